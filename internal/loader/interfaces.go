package loader

//go:generate mockgen -source=interfaces.go -destination=../mock/file_loader_mock.go -package=mock

import "github.com/MKhiriev/go-config-manager/internal/fragment"

// FileLoader reads one logical configuration file from a directory.
type FileLoader interface {
	// Load returns the decoded content of dir/name.<ext> for the first
	// supported extension that exists. It returns ErrNotFound when no
	// candidate exists and an error wrapping ErrFileParse when the content
	// cannot be decoded.
	Load(dir, name string) (fragment.Fragment, error)
}
