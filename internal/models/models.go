package models

// DataType selects which kind of extracted data the crawl returns.
type DataType string

const (
	DataTypeLinks  DataType = "links"
	DataTypeText   DataType = "text"
	DataTypeImages DataType = "images"
)

// Valid reports whether d is one of the supported data types.
func (d DataType) Valid() bool {
	switch d {
	case DataTypeLinks, DataTypeText, DataTypeImages:
		return true
	}
	return false
}

// CrawlRequest holds the parameters for a single crawl API call.
type CrawlRequest struct {
	URL      string
	Depth    int
	DataType DataType
	Limit    int
}

// CrawlResult is the decoded API response. Every field is optional; a
// missing field decodes to nil and renders as an empty section.
type CrawlResult struct {
	Links  []string `json:"links"`
	Texts  []string `json:"texts"`
	Images []string `json:"images"`
}
