package rendering

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"text/template"
	"time"

	"github.com/hireable/cv-generator/internal/types"
)

// documentPart is the zip entry inside a docx package that carries the
// document body and therefore the merge fields.
const documentPart = "word/document.xml"

// TemplateStore fetches template bytes by identifier. Implementations must
// return an error wrapping fs.ErrNotExist when the identifier names no
// stored template.
type TemplateStore interface {
	Fetch(ctx context.Context, templateID string) ([]byte, error)
}

// Renderer merges composed document specs into docx templates. It owns no
// business rules: section order and visibility arrive fully resolved.
type Renderer struct {
	store TemplateStore
}

// NewRenderer creates a renderer backed by the given template store.
func NewRenderer(store TemplateStore) *Renderer {
	return &Renderer{store: store}
}

// NativeFormat returns the format the named template renders to natively.
func NativeFormat(templateID string) types.OutputFormat {
	if strings.EqualFold(path.Ext(templateID), ".doc") {
		return types.FormatDoc
	}
	return types.FormatDocx
}

// Render fetches the spec's template and merges the composed data into its
// document part. Sections are emitted strictly in the order the spec resolved;
// the template ranges over that order and never reorders blocks itself.
func (r *Renderer) Render(ctx context.Context, spec *types.ComposedDocumentSpec) (*types.Artifact, error) {
	raw, err := r.store.Fetch(ctx, spec.TemplateID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TemplateNotFoundError{TemplateID: spec.TemplateID}
		}
		return nil, fmt.Errorf("fetching template %s: %w", spec.TemplateID, err)
	}

	data, err := buildContext(spec)
	if err != nil {
		return nil, &RenderError{Message: "failed to build template context", Cause: err}
	}

	out, err := mergeDocx(raw, data)
	if err != nil {
		return nil, err
	}

	native := NativeFormat(spec.TemplateID)
	return &types.Artifact{
		Bytes:       out,
		ContentType: native.ContentType(),
		Format:      native,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// buildContext converts the spec into the map the template executes against.
// Map form (via a JSON round trip) keeps missing-field detection working:
// text/template only reports missing keys for maps, and that is what turns a
// template/data mismatch into a RenderError instead of silent "<no value>".
func buildContext(spec *types.ComposedDocumentSpec) (map[string]any, error) {
	candidate, err := toMap(spec.Candidate)
	if err != nil {
		return nil, err
	}

	order := make([]string, len(spec.Sections))
	visible := make(map[string]bool, len(spec.Sections))
	for i, id := range spec.Sections {
		order[i] = string(id)
		visible[string(id)] = true
	}

	// Branding is a separate namespace. The key is always present so
	// missingkey=error never fires on it; without a recruiter it is nil and
	// the template's {{with}} block renders nothing rather than empty
	// placeholders.
	data := map[string]any{
		"data":             escapeValue(candidate),
		"sections":         order,
		"sectionVisible":   visible,
		"recruiterProfile": nil,
	}

	if spec.Recruiter != nil {
		recruiter, err := toMap(*spec.Recruiter)
		if err != nil {
			return nil, err
		}
		data["recruiterProfile"] = escapeValue(recruiter)
	}

	return data, nil
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mergeDocx executes the merge fields in the docx package's document part and
// rebuilds the package with every other entry copied through untouched.
func mergeDocx(raw []byte, data map[string]any) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &RenderError{Message: "template is not a valid docx package", Cause: err}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	merged := false

	for _, entry := range zr.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, &RenderError{Message: "failed to read template entry " + entry.Name, Cause: err}
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &RenderError{Message: "failed to read template entry " + entry.Name, Cause: err}
		}

		if entry.Name == documentPart {
			content, err = executeDocumentPart(content, data)
			if err != nil {
				return nil, err
			}
			merged = true
		}

		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, &RenderError{Message: "failed to rebuild docx package", Cause: err}
		}
		if _, err := w.Write(content); err != nil {
			return nil, &RenderError{Message: "failed to rebuild docx package", Cause: err}
		}
	}

	if !merged {
		return nil, &RenderError{Message: "template has no " + documentPart + " part"}
	}
	if err := zw.Close(); err != nil {
		return nil, &RenderError{Message: "failed to finalize docx package", Cause: err}
	}
	return buf.Bytes(), nil
}

func executeDocumentPart(content []byte, data map[string]any) ([]byte, error) {
	tmpl, err := template.New(documentPart).
		Option("missingkey=error").
		Funcs(template.FuncMap{"escape": EscapeXML}).
		Parse(string(content))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse template document part", Cause: err}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, &RenderError{Message: "merge fields do not match the composed data", Cause: err}
	}
	return out.Bytes(), nil
}
