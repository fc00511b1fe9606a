package ffpipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgs(t *testing.T) {
	args := Args(1280, 720, 60, "out.mkv")

	assert.Contains(t, args, "-s")
	assert.Contains(t, args, "1280x720")
	assert.Contains(t, args, "rawvideo")
	assert.Contains(t, args, "rgba")
	assert.Contains(t, args, "libx264")
	assert.Equal(t, "out.mkv", args[len(args)-1])

	// The input framerate has to be declared before the pipe input,
	// or ffmpeg assumes 25fps and retimes the video.
	var rIdx, iIdx int
	for i, a := range args {
		if a == "-r" && rIdx == 0 { rIdx = i }
		if a == "-i"              { iIdx = i }
	}
	assert.Less(t, rIdx, iIdx)
}
