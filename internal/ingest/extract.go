package ingest

import (
	"io"
	"mime/multipart"
	"sort"
)

// payloadFields are the multipart field names checked for CSV content, in
// priority order.
var payloadFields = []string{"file", "csv", "upload"}

// extractStrategy attempts to pull the CSV payload out of a multipart form.
type extractStrategy func(form *multipart.Form) ([]byte, bool)

// extractStrategies is the ordered fallback chain: named file fields first,
// then named value fields, then the first file present, then the first
// value present. Map iteration order is not stable in Go, so the positional
// fallbacks pick the lowest field name.
var extractStrategies = []extractStrategy{
	namedFile("file"),
	namedFile("csv"),
	namedFile("upload"),
	namedValue("file"),
	namedValue("csv"),
	namedValue("upload"),
	firstFile,
	firstValue,
}

// ExtractPayload returns the CSV payload from a multipart form, trying each
// extraction strategy in order. The boolean is false when no candidate
// field holds any content.
func ExtractPayload(form *multipart.Form) ([]byte, bool) {
	for _, strategy := range extractStrategies {
		if payload, found := strategy(form); found {
			return payload, true
		}
	}
	return nil, false
}

func namedFile(name string) extractStrategy {
	return func(form *multipart.Form) ([]byte, bool) {
		headers := form.File[name]
		if len(headers) == 0 {
			return nil, false
		}
		return readFileHeader(headers[0])
	}
}

func namedValue(name string) extractStrategy {
	return func(form *multipart.Form) ([]byte, bool) {
		values := form.Value[name]
		if len(values) == 0 {
			return nil, false
		}
		return []byte(values[0]), true
	}
}

func firstFile(form *multipart.Form) ([]byte, bool) {
	for _, name := range sortedKeysWithFiles(form.File) {
		if payload, ok := readFileHeader(form.File[name][0]); ok {
			return payload, true
		}
	}
	return nil, false
}

func firstValue(form *multipart.Form) ([]byte, bool) {
	names := make([]string, 0, len(form.Value))
	for name, values := range form.Value {
		if len(values) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, false
	}
	sort.Strings(names)
	return []byte(form.Value[names[0]][0]), true
}

func sortedKeysWithFiles(files map[string][]*multipart.FileHeader) []string {
	names := make([]string, 0, len(files))
	for name, headers := range files {
		if len(headers) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, bool) {
	f, err := fh.Open()
	if err != nil {
		return nil, false
	}
	defer f.Close()

	payload, err := io.ReadAll(f)
	if err != nil {
		return nil, false
	}
	return payload, true
}
