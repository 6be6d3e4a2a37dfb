// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements office-suite renderer detection and execution.
// DOCX-to-PDF and DOCX-to-HTML conversions shell out to a headless
// LibreOffice; command execution is injectable so tests never spawn one.
package office

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/doctool/internal/fileutil"
)

const (
	binSoffice     = "soffice"
	binLibreOffice = "libreoffice"
)

// Renderer provides office document conversions: checking availability and
// rendering to PDF or HTML.
type Renderer interface {
	// Name returns the executable the renderer shells out to.
	Name() string

	// Available reports whether the binary exists on PATH and responds to a
	// version probe.
	Available() bool

	// ConvertToPDF renders inputPath as PDF at exactly outputPath.
	ConvertToPDF(inputPath, outputPath string) error

	// ConvertToHTML renders inputPath as HTML at exactly outputPath.
	ConvertToHTML(inputPath, outputPath string) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunSilent(name string, args ...string) error
	RunOutput(name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunSilent(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func (o *osExecutor) RunOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// renderer implements Renderer for one office binary. soffice and
// libreoffice take identical arguments; they differ only in name.
type renderer struct {
	bin  string
	exec executor
}

func (r *renderer) Name() string { return r.bin }

func (r *renderer) Available() bool {
	if _, err := r.exec.LookPath(r.bin); err != nil {
		return false
	}
	return r.exec.RunSilent(r.bin, "--version") == nil
}

func (r *renderer) ConvertToPDF(inputPath, outputPath string) error {
	return r.renderTo(inputPath, "pdf", outputPath)
}

func (r *renderer) ConvertToHTML(inputPath, outputPath string) error {
	return r.renderTo(inputPath, "html", outputPath)
}

// renderTo runs one --convert-to invocation. The office process picks its
// own output name inside --outdir, so rendering happens in a scratch
// directory next to the destination and the produced file is renamed to the
// exact requested path.
func (r *renderer) renderTo(inputPath, format, outputPath string) error {
	scratch, err := os.MkdirTemp(filepath.Dir(outputPath), ".render-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	args := []string{"--headless", "--convert-to", format, "--outdir", scratch, inputPath}
	out, err := r.exec.RunOutput(r.bin, args...)
	if err != nil {
		return fmt.Errorf("converting %s to %s with %s: %w (output: %s)",
			inputPath, format, r.bin, err, strings.TrimSpace(out))
	}

	produced := filepath.Join(scratch, fileutil.Stem(inputPath)+"."+format)
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("%s reported success but wrote no %s output for %s", r.bin, format, inputPath)
	}
	if err := os.Rename(produced, outputPath); err != nil {
		return fmt.Errorf("moving converted output to %s: %w", outputPath, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// DetectRenderer returns a renderer for the named binary, or probes soffice
// then libreoffice on PATH when binary is empty. Returns an error if no
// candidate is available.
func DetectRenderer(binary string) (Renderer, error) {
	return detectRenderer(binary, defaultExec)
}

func detectRenderer(binary string, exec executor) (Renderer, error) {
	if binary != "" {
		r := &renderer{bin: binary, exec: exec}
		if r.Available() {
			return r, nil
		}
		return nil, fmt.Errorf("no office renderer available: %s not found or not operational", binary)
	}

	for _, bin := range []string{binSoffice, binLibreOffice} {
		r := &renderer{bin: bin, exec: exec}
		if r.Available() {
			return r, nil
		}
	}

	return nil, fmt.Errorf(
		"no office renderer available: neither %s nor %s found or operational",
		binSoffice, binLibreOffice,
	)
}
