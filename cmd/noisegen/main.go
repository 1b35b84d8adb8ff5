package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/abaddouh/noisegen/internal/noise"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <output.png>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	outputPath := flag.Arg(0)

	log.Printf("Generating %dx%d white noise image...", noise.Width, noise.Height)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	img := noise.Generate(rng)

	if err := writePNG(outputPath, img); err != nil {
		log.Fatalf("Error writing white noise image: %v", err)
	}

	log.Printf("Image saved to: %s", outputPath)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
