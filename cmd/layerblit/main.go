package main

import(
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/mkreel/layerblit/pkg/ffpipe"
	"github.com/mkreel/layerblit/pkg/layerblit"
)

var(
	fVerbosity int
	fOutDir string
	fFrames int
	fVideo string
	fHDR bool
	fPreview bool
	fPlaceholders bool
	fSaturation float64
	fGrain float64
	fSweep float64
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fOutDir, "outdir", ".", "where to write rendered frames")
	flag.IntVar(&fFrames, "frames", 0, "override the frame count from the config")
	flag.StringVar(&fVideo, "video", "", "pipe frames to ffmpeg, writing this video file")
	flag.BoolVar(&fHDR, "hdr", false, "also write the first frame as Radiance HDR")
	flag.BoolVar(&fPreview, "preview", false, "write an annotated preview of the first frame")
	flag.BoolVar(&fPlaceholders, "placeholders", false, "generate gradient placeholders for missing layer files")
	flag.Float64Var(&fSaturation, "saturation", 0, "override the final saturation amount (1 = clamp only)")
	flag.Float64Var(&fGrain, "grain", 0, "override the post grain strength")
	flag.Float64Var(&fSweep, "sweep", 0, "override the sector sweep strength")
	flag.Parse()

	log.Printf("layerblit starting\n")
}

func main() {
	cmp := layerblit.NewComposition()

	cmp.Config.Placeholders = fPlaceholders
	if err := cmp.LoadFilesAndDirs(flag.Args()...); err != nil {
		log.Fatal(err)
	}

	cmp.Config.Verbosity = fVerbosity
	if fPlaceholders        { cmp.Config.Placeholders = true }
	if fFrames > 0          { cmp.Config.Frames = fFrames }
	if fSaturation > 0      { cmp.Config.Saturation = fSaturation }
	if fGrain > 0           { cmp.Config.Grain = fGrain }
	if fSweep > 0           { cmp.Config.Sweep = fSweep }

	if len(cmp.Layers) == 0 {
		log.Fatal("no layers to composite; pass a config YAML or image files")
	}

	if cmp.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cmp.Config.AsYaml())
		log.Printf("%s", cmp)
	}

	var pipe *ffpipe.Pipe
	if fVideo != "" {
		p, err := ffpipe.Open(cmp.Config.Width, cmp.Config.Height, cmp.Config.FPS, fVideo)
		if err != nil {
			log.Fatal(err)
		}
		pipe = p
	}

	for n:=0; n<cmp.Config.Frames; n++ {
		canvas := cmp.RenderFrame(n)

		if pipe != nil {
			if err := pipe.WriteFrame(canvas.ToNRGBA().Pix); err != nil {
				log.Fatal(err)
			}
			if cmp.Verbosity > 0 {
				pipe.LogProgress(cmp.Config.Frames)
			}
		} else {
			out := filepath.Join(fOutDir, fmt.Sprintf("frame-%04d.png", n))
			if err := canvas.WritePNG(out); err != nil {
				log.Fatal(err)
			}
		}

		if n == 0 {
			if fPreview {
				if err := canvas.WriteAnnotatedPNG("layerblit preview", filepath.Join(fOutDir, "preview.png")); err != nil {
					log.Printf("preview: %v\n", err)
				}
			}
			if fHDR {
				if err := canvas.WriteHDR(filepath.Join(fOutDir, "frame-0000.hdr")); err != nil {
					log.Printf("hdr: %v\n", err)
				}
			}
		}
	}

	if pipe != nil {
		if err := pipe.Close(); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("layerblit done: %s\n", cmp.RenderTimings())
}
