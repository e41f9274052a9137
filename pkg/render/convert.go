package render

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/matzehuels/archdraw/pkg/errors"
)

const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG bytes to PDF with rsvg-convert from librsvg
// (brew install librsvg, apt install librsvg2-bin).
func ToPDF(svg []byte) ([]byte, error) {
	if !HasRSVG() {
		return nil, errors.New(errors.ErrCodeRender,
			"pdf output requires %s from librsvg (brew install librsvg, apt install librsvg2-bin)", rsvgConvert)
	}

	cmd := exec.Command(rsvgConvert, "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "%s: %s", rsvgConvert, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}

// HasRSVG reports whether rsvg-convert is on PATH.
func HasRSVG() bool {
	_, err := exec.LookPath(rsvgConvert)
	return err == nil
}
