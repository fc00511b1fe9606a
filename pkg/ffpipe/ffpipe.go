package ffpipe

// Pipes raw RGBA frames into an external ffmpeg process, which does
// all the actual video encoding; we just keep its stdin fed in frame
// order.
//
// ffmpeg needs to be on $PATH:
//  $ sudo apt-get install ffmpeg

import (
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/mkreel/layerblit/pkg/lmath"
)

type Pipe struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser

	w, h   int
	fps    float64
	frames int
	started time.Time
}

// Args assembles the ffmpeg invocation for a raw RGBA stdin stream
// encoded out to H.264.
func Args(w, h int, fps float64, output string) []string {
	return []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", w, h),
		"-r", fmt.Sprintf("%g", fps),
		"-i", "pipe:0",
		"-pix_fmt", "yuv420p",
		"-vcodec", "libx264",
		"-crf", "18",
		output,
	}
}

func Open(w, h int, fps float64, output string) (*Pipe, error) {
	cmd := exec.Command("ffmpeg", Args(w, h, fps, output)...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("ffpipe stdin: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffpipe starting ffmpeg: %v", err)
	}

	return &Pipe{cmd: cmd, stdin: stdin, w: w, h: h, fps: fps, started: time.Now()}, nil
}

// WriteFrame sends one frame of w*h*4 straight-alpha RGBA bytes.
// Frames must arrive in presentation order.
func (p *Pipe)WriteFrame(rgba []byte) error {
	if want := p.w * p.h * 4; len(rgba) != want {
		return fmt.Errorf("ffpipe frame %d: got %d bytes, want %d", p.frames, len(rgba), want)
	}
	if _, err := p.stdin.Write(rgba); err != nil {
		return fmt.Errorf("ffpipe frame %d: %v", p.frames, err)
	}
	p.frames++
	return nil
}

// LogProgress prints an ETA: scale the wall time spent so far by the
// work remaining.
func (p *Pipe)LogProgress(totalFrames int) {
	if p.frames == 0 || totalFrames <= p.frames {
		return
	}
	took := time.Since(p.started).Seconds()
	eta := lmath.Proportion(float64(p.frames), took, float64(totalFrames-p.frames))
	log.Printf("ffpipe: frame %d/%d, took %.1fs, eta %.1fs\n", p.frames, totalFrames, took, eta)
}

// Close shuts stdin so ffmpeg sees EOF, then waits for it to finish
// writing the container.
func (p *Pipe)Close() error {
	if err := p.stdin.Close(); err != nil {
		return fmt.Errorf("ffpipe closing stdin: %v", err)
	}
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("ffpipe waiting for ffmpeg: %v", err)
	}
	log.Printf("ffpipe: encoded %d frames\n", p.frames)
	return nil
}
