package models

import (
	"crypto/sha1"
	"errors"

	"github.com/zeebo/bencode"
)

// ErrNoAnnounce is returned by AnnounceURLs when the metafile carries
// neither an announce URL nor an announce-list.
var ErrNoAnnounce = errors.New("metafile has no announce url and no announce-list")

// Metafile is the typed model of a .torrent file. It is assembled field by
// field by internal/decoder and is read-only afterwards; every field except
// Info is optional and left at its zero value when absent from the source
// document.
type Metafile struct {
	Info         Info
	Announce     string
	Nodes        []Node
	Encoding     string
	HTTPSeeds    []string
	AnnounceList [][]string
	CreationDate *int64
	Comment      string
	CreatedBy    string
}

// Info is the info dictionary. Its bencode tags drive the canonical
// re-encode used for the info hash: optional fields carry omitempty and
// pointer or nil-slice absence so that an unpopulated field is omitted
// from the encoding rather than written as an empty placeholder.
type Info struct {
	Name        string   `bencode:"name"`
	Pieces      []byte   `bencode:"pieces,omitempty"`
	PieceLength int64    `bencode:"piece length"`
	MD5Sum      string   `bencode:"md5sum,omitempty"`
	Length      *int64   `bencode:"length,omitempty"`
	Files       []File   `bencode:"files,omitempty"`
	Private     *int64   `bencode:"private,omitempty"`
	Path        []string `bencode:"path,omitempty"`
	RootHash    string   `bencode:"root hash,omitempty"`
	Source      string   `bencode:"source,omitempty"`
}

// File is one entry of a multi-file info dictionary.
type File struct {
	Path   []string `bencode:"path"`
	Length int64    `bencode:"length"`
	MD5Sum string   `bencode:"md5sum,omitempty"`
}

// Node is one DHT bootstrap node pair from the top-level "nodes" key.
type Node struct {
	Host string
	Port int64
}

// InfoHash derives the torrent's identifier by canonically re-encoding the
// info dictionary and hashing it. Only the fields known to Info contribute;
// extension keys dropped during decode are excluded from the hash input.
func (m Metafile) InfoHash() (Hash, error) {
	encoded, err := bencode.EncodeBytes(m.Info)
	if err != nil {
		return Hash{}, err
	}
	return Hash(sha1.Sum(encoded)), nil
}

// TotalSize is the content size in bytes: the single-file length when
// present, otherwise the sum of the multi-file entries, otherwise zero.
// Recomputed on every call.
func (m Metafile) TotalSize() int64 {
	if m.Info.Length != nil {
		return *m.Info.Length
	}
	var total int64
	for _, f := range m.Info.Files {
		total += f.Length
	}
	return total
}

// AnnounceURLs flattens the announce tiers in order, falling back to the
// single announce URL. A present announce-list wins even when empty.
func (m Metafile) AnnounceURLs() ([]string, error) {
	if m.AnnounceList != nil {
		var urls []string
		for _, tier := range m.AnnounceList {
			urls = append(urls, tier...)
		}
		return urls, nil
	}
	if m.Announce != "" {
		return []string{m.Announce}, nil
	}
	return nil, ErrNoAnnounce
}

// PieceHashes splits the raw pieces buffer into 20-byte hashes. A trailing
// chunk shorter than a full hash yields a NotEnoughBytesError.
func (i Info) PieceHashes() ([]Hash, error) {
	hashes := make([]Hash, 0, len(i.Pieces)/HashLen)
	for start := 0; start < len(i.Pieces); start += HashLen {
		end := start + HashLen
		if end > len(i.Pieces) {
			end = len(i.Pieces)
		}
		h, err := HashFromBytes(i.Pieces[start:end])
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}
