// Command pix is a small raster image tool built on the pix library.
// It decodes images through the format registry, runs one core operation
// (crop, flip, resize, line) and writes the result back out.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gopix/pix"
	"github.com/gopix/pix/internal/parallel"
)

var cli struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Info   infoCmd   `cmd:"" help:"Print image dimensions and color type."`
	Crop   cropCmd   `cmd:"" help:"Cut an axis-aligned rectangle out of an image."`
	Flip   flipCmd   `cmd:"" help:"Mirror an image horizontally or vertically."`
	Resize resizeCmd `cmd:"" help:"Resize an image with nearest-neighbor sampling."`
	Line   lineCmd   `cmd:"" help:"Draw a straight line onto an image."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("pix"),
		kong.Description("Minimal raster image manipulation tool."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		pix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx.FatalIfErrorf(ctx.Run())
}

// load opens and decodes one image file.
func load(path string) (*pix.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := pix.Open(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return img, nil
}

// store encodes an image to a file, picking the format from the extension.
func store(path string, img *pix.Image) error {
	name, ok := formatForPath(path)
	if !ok {
		return fmt.Errorf("cannot infer output format from %q", path)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := pix.Save(f, img, name); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// formatForPath maps a file extension to a registered format name.
func formatForPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", true
	case ".jpg", ".jpeg":
		return "jpeg", true
	case ".gif":
		return "gif", true
	case ".bmp":
		return "bmp", true
	case ".tif", ".tiff":
		return "tiff", true
	default:
		return "", false
	}
}

type infoCmd struct {
	Jobs  int      `short:"j" help:"Number of files to inspect in parallel (default GOMAXPROCS)."`
	Paths []string `arg:"" type:"existingfile" help:"Image files to inspect."`
}

func (c *infoCmd) Run() error {
	pool := parallel.New(c.Jobs)
	for _, path := range c.Paths {
		pool.Submit(func() {
			img, err := load(path)
			if err != nil {
				slog.Error("could not read image", "file", path, "error", err)
				return
			}
			fmt.Printf("%s: %dx%d %s\n", path, img.Width(), img.Height(), img.ColorType())
		})
	}
	pool.Close()
	return nil
}

type cropCmd struct {
	X      int    `required:"" help:"Left edge of the crop rectangle."`
	Y      int    `required:"" help:"Top edge of the crop rectangle."`
	Width  int    `short:"W" required:"" help:"Crop width in pixels."`
	Height int    `short:"H" required:"" help:"Crop height in pixels."`
	In     string `arg:"" type:"existingfile" help:"Input image."`
	Out    string `arg:"" help:"Output image."`
}

func (c *cropCmd) Run() error {
	img, err := load(c.In)
	if err != nil {
		return err
	}
	cropped, err := img.Crop(c.X, c.Y, c.Width, c.Height)
	if err != nil {
		return err
	}
	return store(c.Out, cropped)
}

type flipCmd struct {
	Horizontal bool   `short:"x" xor:"dir" required:"" help:"Mirror left to right."`
	Vertical   bool   `short:"y" xor:"dir" required:"" help:"Mirror top to bottom."`
	In         string `arg:"" type:"existingfile" help:"Input image."`
	Out        string `arg:"" help:"Output image."`
}

func (c *flipCmd) Run() error {
	img, err := load(c.In)
	if err != nil {
		return err
	}
	if c.Horizontal {
		img = img.FlipLeftRight()
	} else {
		img = img.FlipTopBottom()
	}
	return store(c.Out, img)
}

type resizeCmd struct {
	Width  int    `short:"W" required:"" help:"Target width in pixels."`
	Height int    `short:"H" required:"" help:"Target height in pixels."`
	In     string `arg:"" type:"existingfile" help:"Input image."`
	Out    string `arg:"" help:"Output image."`
}

func (c *resizeCmd) Run() error {
	img, err := load(c.In)
	if err != nil {
		return err
	}
	resized, err := img.Resize(c.Width, c.Height)
	if err != nil {
		return err
	}
	return store(c.Out, resized)
}

type lineCmd struct {
	Color string `short:"c" default:"white" help:"Line color: CSS name or hex."`
	X0    int    `required:"" help:"Start x."`
	Y0    int    `required:"" help:"Start y."`
	X1    int    `required:"" help:"End x."`
	Y1    int    `required:"" help:"End y."`
	In    string `arg:"" type:"existingfile" help:"Input image."`
	Out   string `arg:"" help:"Output image."`
}

func (c *lineCmd) Run() error {
	img, err := load(c.In)
	if err != nil {
		return err
	}

	color, ok := pix.ColorByName(c.Color)
	if !ok {
		color = pix.Hex(c.Color)
	}

	img.Draw(pix.Line{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}, color)
	return store(c.Out, img)
}
