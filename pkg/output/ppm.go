package output

import (
	"bufio"
	"fmt"
	"io"
)

// EncodePPM writes img as an ASCII P3 PPM with a max value of 255.
// Rows are emitted top first, one pixel triple per line.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width(), img.Height()); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	for y := img.Height() - 1; y >= 0; y-- {
		for x := 0; x < img.Width(); x++ {
			if _, err := fmt.Fprintln(bw, img.Pixel(x, y)); err != nil {
				return fmt.Errorf("writing ppm row %d: %w", y, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm: %w", err)
	}
	return nil
}
