// Package testutil provides common test utilities for the atlas core.
package testutil

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// BuildArchive assembles an in-memory KMZ-style archive: the given KML body
// under the given entry name plus any auxiliary assets.
func BuildArchive(t *testing.T, kmlName, kmlBody string, assets map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	if kmlName != "" {
		w, err := zw.Create(kmlName)
		require.NoError(t, err, "create markup entry")
		_, err = w.Write([]byte(kmlBody))
		require.NoError(t, err, "write markup entry")
	}
	for name, data := range assets {
		w, err := zw.Create(name)
		require.NoError(t, err, "create asset entry")
		_, err = w.Write(data)
		require.NoError(t, err, "write asset entry")
	}

	require.NoError(t, zw.Close(), "close archive")
	return buf.Bytes()
}

// Placemark renders one KML placemark with optional extended data pairs.
func Placemark(name, coordinates string, attrs map[string]string) string {
	var b bytes.Buffer
	b.WriteString("<Placemark><name>")
	b.WriteString(name)
	b.WriteString("</name>")
	if len(attrs) > 0 {
		b.WriteString("<ExtendedData>")
		for k, v := range attrs {
			b.WriteString(`<Data name="` + k + `"><value>` + v + `</value></Data>`)
		}
		b.WriteString("</ExtendedData>")
	}
	b.WriteString("<Point><coordinates>")
	b.WriteString(coordinates)
	b.WriteString("</coordinates></Point></Placemark>")
	return b.String()
}

// KMLDocument wraps placemark markup in a well-formed KML document.
func KMLDocument(placemarks ...string) string {
	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><kml><Document>`)
	for _, p := range placemarks {
		b.WriteString(p)
	}
	b.WriteString(`</Document></kml>`)
	return b.String()
}

// Context returns a test context with a deadline well inside go test's own.
func Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
