// Package source resolves document references, local paths or http(s) URLs,
// to named streams or files. The validator core never touches it: content
// arrives there as a plain string.
package source

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// Stream is resolved document content with a display name.
type Stream struct {
	Name   string
	Reader io.ReadCloser
}

func (s *Stream) Close() error {
	return s.Reader.Close()
}

// ResolveToStream opens the referenced document. A reference with an http or
// https scheme is fetched over the network, anything else is treated as a
// local file path.
func ResolveToStream(ref string) (*Stream, error) {
	u, e := url.Parse(ref)
	if e == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetch(ref, u)
	}

	f, e := os.Open(ref)
	if e != nil {
		return nil, errors.Wrapf(e, "opening source %s", ref)
	}
	return &Stream{Name: filepath.Base(ref), Reader: f}, nil
}

// ResolveToPath resolves a reference to a file on the local filesystem,
// downloading remote content into dir (a fresh temp directory when dir is
// empty). Local references resolve to themselves.
func ResolveToPath(ref, dir string) (string, error) {
	u, e := url.Parse(ref)
	if e != nil || (u.Scheme != "http" && u.Scheme != "https") {
		if _, e := os.Stat(ref); e != nil {
			return "", errors.Wrapf(e, "resolving source %s", ref)
		}
		return ref, nil
	}

	s, e := fetch(ref, u)
	if e != nil {
		return "", e
	}
	defer s.Close()

	if dir == "" {
		dir, e = os.MkdirTemp("", "doctags-source-")
		if e != nil {
			return "", errors.Wrap(e, "creating download dir")
		}
	}

	target := filepath.Join(dir, s.Name)
	f, e := os.Create(target)
	if e != nil {
		return "", errors.Wrapf(e, "creating %s", target)
	}
	defer f.Close()

	if _, e = io.Copy(f, s.Reader); e != nil {
		return "", errors.Wrapf(e, "writing %s", target)
	}
	return target, nil
}

func fetch(ref string, u *url.URL) (*Stream, error) {
	log.Debug().Str("url", ref).Msg("fetching remote source")

	resp, e := http.Get(ref)
	if e != nil {
		return nil, errors.Wrapf(e, "fetching %s", ref)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.Newf("fetching %s: status %s", ref, resp.Status)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		// URL without a path component still needs a usable stream name.
		name = "file"
	}
	return &Stream{Name: name, Reader: resp.Body}, nil
}
