package renderer

import (
	"firecrawl-cli/internal/models"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const outputFilename = "crawling_results.md"

// FileRenderer writes rendered crawl results into a fixed output directory.
type FileRenderer struct {
	outputDir string
}

// New creates a FileRenderer rooted at outputDir.
func New(outputDir string) *FileRenderer {
	return &FileRenderer{outputDir: outputDir}
}

// Render maps a crawl result to a Markdown document. An unknown data type
// renders the headings with no body section.
func Render(result models.CrawlResult, dataType models.DataType) string {
	var b strings.Builder
	b.WriteString("# Crawl Results\n\n")
	b.WriteString("## Data type: " + string(dataType) + "\n\n")

	switch dataType {
	case models.DataTypeLinks:
		b.WriteString("### Links found:\n\n")
		for _, link := range result.Links {
			b.WriteString("- [" + link + "](" + link + ")\n")
		}
	case models.DataTypeText:
		b.WriteString("### Extracted text:\n\n")
		for _, text := range result.Texts {
			b.WriteString(text + "\n\n---\n\n")
		}
	case models.DataTypeImages:
		b.WriteString("### Images found:\n\n")
		for _, image := range result.Images {
			b.WriteString("![" + image + "](" + image + ")\n\n")
		}
	}

	return b.String()
}

// Save renders the result and writes crawling_results.md inside the output
// directory, creating it and any parents as needed. Repeat runs against the
// same directory overwrite the file. Returns the written path.
func (fr *FileRenderer) Save(result models.CrawlResult, dataType models.DataType, logger *zap.Logger) (string, error) {
	if err := os.MkdirAll(fr.outputDir, 0755); err != nil {
		return "", err
	}

	doc := Render(result, dataType)
	path := filepath.Join(fr.outputDir, outputFilename)

	logger.Debug("writing results", zap.String("path", path), zap.Int("bytes", len(doc)))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", err
	}
	return path, nil
}
