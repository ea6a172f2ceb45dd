// Package resources embeds the bean descriptors read by the properties and
// XML config styles.
package resources

import (
	"embed"
	"io"
)

const (
	PropertiesDemo = "properties-demo.properties"
	XMLDemo        = "xml-demo.xml"
)

//go:embed properties-demo.properties xml-demo.xml
var files embed.FS

// Open opens an embedded descriptor by name.
func Open(name string) (io.ReadCloser, error) {
	return files.Open(name)
}
