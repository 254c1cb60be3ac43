// Package header renders and writes the generated version header.
package header

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/afero"
)

// IncludeGuard protects the generated header against double inclusion.
const IncludeGuard = "__SPRESENSE_VERSION_H"

// FileMode is used when the header does not exist yet.
const FileMode os.FileMode = 0o644

var headerTmpl = template.Must(template.New("version.h").Parse(`#ifndef {{.Guard}}
#define {{.Guard}}

#define SPRESENSE_VERSION "{{.SpresenseVersion}}"

#define BOOTLOADER_VERSION "{{.BootloaderVersion}}"

#endif /* {{.Guard}} */
`))

// Fields are the values substituted into the header.
type Fields struct {
	SpresenseVersion  string
	BootloaderVersion string
}

// Render returns the header text for f. Values are inserted verbatim.
func Render(f Fields) []byte {
	var buf bytes.Buffer
	data := struct {
		Guard string
		Fields
	}{IncludeGuard, f}

	// Executing a parsed template into a buffer with plain string fields
	// cannot fail.
	if err := headerTmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("render version header: %v", err))
	}
	return buf.Bytes()
}

// Write creates or truncates path on fs and writes content to it.
// The file is closed exactly once and a close failure is returned.
func Write(fs afero.Fs, path string, content []byte) (err error) {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FileMode)
	if err != nil {
		return fmt.Errorf("failed to open header %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close header %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write header %s: %w", path, err)
	}
	return nil
}
