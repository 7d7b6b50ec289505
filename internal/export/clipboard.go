package export

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var clipboardInit = sync.OnceValue(clipboard.Init)

// CopyPNG rasterizes the document and puts the image on the system clipboard.
func CopyPNG(ctx context.Context, doc Document) error {
	if err := checkCtx(ctx, "clipboard"); err != nil {
		return err
	}
	if err := clipboardInit(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	data, err := EncodePNG(ctx, doc)
	if err != nil {
		return err
	}
	if err := checkCtx(ctx, "clipboard"); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
