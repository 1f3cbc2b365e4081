// SPDX-License-Identifier: GPL-2.0-or-later

// Package pack reads and writes pak archives, used to ship several scenes in
// one file.
package pack

import (
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
)

type header struct {
	ID     [4]byte
	Offset int32
	Size   int32
}

type entry struct {
	Name   [56]byte
	Offset int32
	Size   int32
}

const entrySize = 64

var magic = [4]byte{'P', 'A', 'C', 'K'}

type Pack struct {
	f     *os.File
	files map[string]*qfile
	name  string
}

type qfile struct {
	offset int64
	size   int64
}

// Open returns a io.SectionReader or os.ErrNotExist if the pak has no entry
// with the provided name.
func (p *Pack) Open(name string) (*io.SectionReader, error) {
	q, ok := p.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}

	return io.NewSectionReader(p.f, q.offset, q.size), nil
}

// Names returns the sorted entry names.
func (p *Pack) Names() []string {
	r := make([]string, 0, len(p.files))
	for n := range p.files {
		r = append(r, n)
	}
	sort.Strings(r)
	return r
}

func (p *Pack) String() string {
	return p.name
}

func (p *Pack) Close() error {
	return p.f.Close()
}

func (p *Pack) init() error {
	var h header
	if err := binary.Read(p.f, binary.LittleEndian, &h); err != nil {
		return err
	}
	if h.ID != magic {
		return errors.New("not a pack")
	}
	r, err := p.f.Seek(int64(h.Offset), io.SeekStart)
	if err != nil {
		return err
	}
	if r != int64(h.Offset) {
		return errors.New("not long enough")
	}
	filenum := h.Size / entrySize
	p.files = make(map[string]*qfile, filenum)
	for i := int32(0); i < filenum; i++ {
		var e entry
		if err := binary.Read(p.f, binary.LittleEndian, &e); err != nil {
			return errors.Wrapf(err, "reading entry %d", i)
		}
		n := bytes.IndexByte(e.Name[:], 0)
		if n < 0 {
			n = len(e.Name)
		}
		name := string(e.Name[:n])
		if p.files[name] != nil {
			return errors.Errorf("files in pack are not unique: %s", name)
		}
		p.files[name] = &qfile{
			offset: int64(e.Offset),
			size:   int64(e.Size),
		}
	}
	return nil
}

// Open opens the pak archive at name.
func Open(name string) (*Pack, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	p := &Pack{f: f, name: name}
	if err := p.init(); err != nil {
		p.Close()
		return nil, errors.Wrap(err, name)
	}
	return p, nil
}

// File is one entry to be written by Write.
type File struct {
	Name string
	Data []byte
}

// Write writes files as a pak archive: header, file data, directory.
func Write(w io.Writer, files []File) error {
	seen := make(map[string]bool, len(files))
	offset := int32(binary.Size(header{}))
	dir := make([]entry, 0, len(files))
	for _, f := range files {
		var e entry
		if len(f.Name) == 0 || len(f.Name) >= len(e.Name) {
			return errors.Errorf("bad pack entry name %q", f.Name)
		}
		if seen[f.Name] {
			return errors.Errorf("files in pack are not unique: %s", f.Name)
		}
		seen[f.Name] = true
		copy(e.Name[:], f.Name)
		e.Offset = offset
		e.Size = int32(len(f.Data))
		offset += e.Size
		dir = append(dir, e)
	}
	h := header{
		ID:     magic,
		Offset: offset,
		Size:   int32(len(dir) * entrySize),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	for _, f := range files {
		if _, err := w.Write(f.Data); err != nil {
			return err
		}
	}
	return binary.Write(w, binary.LittleEndian, dir)
}
