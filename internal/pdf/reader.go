package pdf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func init() {
	api.DisableConfigDir()
}

// ExtractTextFile opens the PDF at path and returns its text, see ExtractText.
func ExtractTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrExtractionFailure, err)
	}
	defer f.Close()

	return ExtractText(f)
}

// ExtractText returns the text of every page in page order, each page
// followed by a newline.
func ExtractText(rs io.ReadSeeker) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrExtractionFailure, r)
		}
	}()

	ctx, err := api.ReadValidateAndOptimize(rs, model.NewDefaultConfiguration())
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrExtractionFailure, err)
	}

	var b strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		content, fonts, err := pageContent(ctx, pageNr)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %w", ErrExtractionFailure, pageNr, err)
		}
		b.WriteString(contentText(content, fonts))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// pageContent returns the decoded content stream of a page together with
// the fonts of its (possibly inherited) resources.
func pageContent(ctx *model.Context, pageNr int) ([]byte, map[string]*font, error) {
	d, _, inherited, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, nil
	}
	content, err := ctx.PageContent(d)
	if err != nil && !errors.Is(err, model.ErrNoContent) {
		return nil, nil, err
	}

	var resources types.Dict
	if inherited != nil {
		resources = inherited.Resources
	}
	if resources == nil {
		if obj, found := d.Find("Resources"); found {
			resources, _ = ctx.DereferenceDict(obj)
		}
	}
	return content, pageFonts(ctx, resources), nil
}
