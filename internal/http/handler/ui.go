package handler

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"exampaper/internal/service"
)

//go:embed web/index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	Title  string
	Prompt string
}

// Index serves the single-page shell: upload, edit the instruction, run, download.
// All state between steps lives in the browser.
func Index(svc service.PaperService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		if err := indexTmpl.Execute(&buf, indexData{
			Title:  "Model Question Paper Generator",
			Prompt: svc.DefaultInstruction(),
		}); err != nil {
			return err
		}
		return c.Type("html").Send(buf.Bytes())
	}
}
