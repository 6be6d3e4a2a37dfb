// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

// ArgKind names the primitive shape of one argument field, for catalog
// listings.
type ArgKind string

const (
	ArgString      ArgKind = "string"
	ArgStringList  ArgKind = "string list"
	ArgRangeList   ArgKind = "range list"
	ArgNumOrString ArgKind = "number or string"
)

// ArgSpec describes one argument field of an operation.
type ArgSpec struct {
	Name     string  `json:"name"`
	Kind     ArgKind `json:"kind"`
	Required bool    `json:"required"`
}

// Descriptor describes one registered operation.
type Descriptor struct {
	Name    string    `json:"name"`
	Summary string    `json:"summary"`
	Args    []ArgSpec `json:"args"`
}

// operation pairs a descriptor with its argument-checked implementation.
type operation struct {
	desc Descriptor
	run  func(args map[string]any) Result
}

// bind joins an operation's shape check to its typed handler. A parse
// failure becomes the canonical invalid-arguments failure naming the
// operation; the handler only ever sees a well-formed request.
func bind[T any](name string, parse func(map[string]any) (T, error), handle func(T) Result) func(map[string]any) Result {
	return func(args map[string]any) Result {
		req, err := parse(args)
		if err != nil {
			return fail("%s: invalid arguments: %v", name, err)
		}
		return handle(req)
	}
}

func str(name string) ArgSpec {
	return ArgSpec{Name: name, Kind: ArgString, Required: true}
}

// newRegistry builds the complete operation table. The catalog is fixed
// here; nothing registers later.
func newRegistry(deps Deps) map[string]operation {
	h := &handlers{deps: deps}

	list := []operation{
		{
			desc: Descriptor{
				Name:    "document_reader",
				Summary: "Extract the plain text of a pdf, docx, xlsx, html, or text file",
				Args:    []ArgSpec{str("filePath")},
			},
			run: bind("document_reader", parseReader, h.documentReader),
		},
		{
			desc: Descriptor{
				Name:    "pdf_merger",
				Summary: "Concatenate the pages of several PDFs into one document",
				Args: []ArgSpec{
					{Name: "inputPaths", Kind: ArgStringList, Required: true},
					str("outputDir"),
				},
			},
			run: bind("pdf_merger", parseMerge, h.pdfMerger),
		},
		{
			desc: Descriptor{
				Name:    "pdf_splitter",
				Summary: "Extract 1-based inclusive page ranges of a PDF into separate documents",
				Args: []ArgSpec{
					str("inputPath"),
					str("outputDir"),
					{Name: "pageRanges", Kind: ArgRangeList, Required: true},
				},
			},
			run: bind("pdf_splitter", parseSplit, h.pdfSplitter),
		},
		{
			desc: Descriptor{
				Name:    "docx_to_pdf",
				Summary: "Render a DOCX file as PDF at an exact output path",
				Args:    []ArgSpec{str("inputPath"), str("outputPath")},
			},
			run: bind("docx_to_pdf", parseRender, h.docxToPDF),
		},
		{
			desc: Descriptor{
				Name:    "docx_to_html",
				Summary: "Render a DOCX file as HTML into a directory",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("docx_to_html", parseTransform, h.docxToHTML),
		},
		{
			desc: Descriptor{
				Name:    "html_cleaner",
				Summary: "Strip scripts, styles, and event handlers from an HTML file",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("html_cleaner", parseTransform, h.htmlCleaner),
		},
		{
			desc: Descriptor{
				Name:    "html_to_text",
				Summary: "Extract the visible text of an HTML file",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("html_to_text", parseTransform, h.htmlToText),
		},
		{
			desc: Descriptor{
				Name:    "html_to_markdown",
				Summary: "Convert an HTML file to Markdown",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("html_to_markdown", parseTransform, h.htmlToMarkdown),
		},
		{
			desc: Descriptor{
				Name:    "html_extract_resources",
				Summary: "List the images, scripts, stylesheets, and links an HTML file references",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("html_extract_resources", parseTransform, h.htmlExtractResources),
		},
		{
			desc: Descriptor{
				Name:    "html_formatter",
				Summary: "Re-indent an HTML file for readability",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("html_formatter", parseTransform, h.htmlFormatter),
		},
		{
			desc: Descriptor{
				Name:    "text_encoding_converter",
				Summary: "Re-encode a text file between named character encodings",
				Args: []ArgSpec{
					str("inputPath"),
					str("outputDir"),
					str("fromEncoding"),
					str("toEncoding"),
				},
			},
			run: bind("text_encoding_converter", parseEncode, h.textEncodingConverter),
		},
		{
			desc: Descriptor{
				Name:    "text_formatter",
				Summary: "Normalize line endings, trailing whitespace, and blank runs of a text file",
				Args:    []ArgSpec{str("inputPath"), str("outputDir")},
			},
			run: bind("text_formatter", parseTransform, h.textFormatter),
		},
		{
			desc: Descriptor{
				Name:    "text_diff",
				Summary: "Write a line diff of two text files",
				Args:    []ArgSpec{str("file1Path"), str("file2Path"), str("outputDir")},
			},
			run: bind("text_diff", parseDiff, h.textDiff),
		},
		{
			desc: Descriptor{
				Name:    "text_splitter",
				Summary: "Partition a text file into numbered fragments by line count or delimiter",
				Args: []ArgSpec{
					str("inputPath"),
					str("outputDir"),
					str("splitBy"),
					{Name: "value", Kind: ArgNumOrString, Required: true},
				},
			},
			run: bind("text_splitter", parsePartition, h.textSplitter),
		},
	}

	ops := make(map[string]operation, len(list))
	for _, op := range list {
		ops[op.desc.Name] = op
	}
	return ops
}
