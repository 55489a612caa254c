package rendering

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// renderPDF converts the intermediate markup to PDF via headless Chrome.
// The HTML page and its stylesheet are written to the temp directory under
// randomized names so concurrent requests never collide, and both are
// removed on every exit path. The conversion is bounded by the configured
// timeout.
func (r *Renderer) renderPDF(ctx context.Context, markup, title string) ([]byte, error) {
	tempDir := r.tempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	token := uuid.NewString()
	stylesheetName := "cvtailor-" + token + ".css"
	stylesheetPath := filepath.Join(tempDir, stylesheetName)
	htmlPath := filepath.Join(tempDir, "cvtailor-"+token+".html")

	if err := os.WriteFile(stylesheetPath, []byte(buildStylesheet(r.style)), 0o600); err != nil {
		return nil, r.renderFailure("could not prepare conversion input", err)
	}
	defer func() { _ = os.Remove(stylesheetPath) }()

	htmlBytes, err := renderHTMLWithStylesheet(markup, title, stylesheetName)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(htmlPath, htmlBytes, 0o600); err != nil {
		return nil, r.renderFailure("could not prepare conversion input", err)
	}
	defer func() { _ = os.Remove(htmlPath) }()

	pdf, err := r.printToPDF(ctx, htmlPath)
	if err != nil {
		return nil, r.renderFailure("conversion failed", err)
	}
	if len(pdf) == 0 {
		return nil, r.renderFailure("conversion produced no output", nil)
	}
	return pdf, nil
}

// printToPDF drives a headless Chrome instance against the prepared HTML
// file and returns the printed bytes.
func (r *Renderer) printToPDF(ctx context.Context, htmlPath string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	dims := r.style.dimensions()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(dims.Width).
				WithPaperHeight(dims.Height).
				WithMarginTop(toInches(r.style.MarginTop)).
				WithMarginRight(toInches(r.style.MarginRight)).
				WithMarginBottom(toInches(r.style.MarginBottom)).
				WithMarginLeft(toInches(r.style.MarginLeft)).
				Do(ctx)
			return err
		}),
	)
	return pdf, err
}

// renderFailure logs full diagnostic detail to the internal sink and
// returns the generic user-facing error.
func (r *Renderer) renderFailure(message string, cause error) error {
	r.logger.Error("pdf rendering failed",
		zap.String("detail", message),
		zap.Error(cause),
	)
	return &RenderError{Message: message, Cause: cause}
}
