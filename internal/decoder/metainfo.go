package decoder

import (
	"errors"
	"io"
	"log/slog"

	"github.com/WendelHime/torrentmeta/internal/shared/models"
	"github.com/zeebo/bencode"
)

// ErrNotDictionary is returned when the top-level bencode value is a
// byte-string, integer or list instead of a dictionary.
var ErrNotDictionary = errors.New("torrent metafile must be a bencoded dictionary")

type MetafileDecoder interface {
	Decode(io.Reader) (models.Metafile, error)
}

type decoder struct{}

func NewDecoder() MetafileDecoder {
	return decoder{}
}

// Decode parses the raw bencode into an untyped tree and walks it into a
// Metafile. Shape mismatches on recognized keys leave the field at its zero
// value or drop the malformed entry; only a non-dictionary top level, a
// private flag outside {0, 1} and parser errors abort the decode.
func (decoder) Decode(torrent io.Reader) (models.Metafile, error) {
	var root interface{}
	if err := bencode.NewDecoder(torrent).Decode(&root); err != nil {
		slog.Error("failed to parse torrent", slog.Any("error", err))
		return models.Metafile{}, err
	}
	return decodeRoot(root)
}

func decodeRoot(root interface{}) (models.Metafile, error) {
	dict, ok := asDict(root)
	if !ok {
		return models.Metafile{}, ErrNotDictionary
	}

	var meta models.Metafile
	for key, value := range dict {
		switch toText(key) {
		case "info":
			infoDict, ok := asDict(value)
			if !ok {
				slog.Warn("info is not a dictionary, leaving it empty")
				continue
			}
			info, err := decodeInfo(infoDict)
			if err != nil {
				return models.Metafile{}, err
			}
			meta.Info = info
		case "announce":
			if s, ok := asString(value); ok {
				meta.Announce = toText(s)
			}
		case "nodes":
			if list, ok := asList(value); ok {
				meta.Nodes = decodeNodes(list)
			}
		case "encoding":
			if s, ok := asString(value); ok {
				meta.Encoding = toText(s)
			}
		case "httpseeds":
			if list, ok := asList(value); ok {
				meta.HTTPSeeds = decodeTextList(list)
			}
		case "announce-list":
			if list, ok := asList(value); ok {
				meta.AnnounceList = decodeAnnounceList(list)
			}
		case "creation date":
			if n, ok := asInt(value); ok {
				meta.CreationDate = &n
			}
		case "comment":
			if s, ok := asString(value); ok {
				meta.Comment = toText(s)
			}
		case "created by":
			if s, ok := asString(value); ok {
				meta.CreatedBy = toText(s)
			}
		default:
			slog.Debug("skipping unrecognized metafile key", slog.String("key", toText(key)))
		}
	}

	return meta, nil
}

// decodeNodes collects well-formed [host, port] pairs in document order and
// drops everything else.
func decodeNodes(list []interface{}) []models.Node {
	nodes := make([]models.Node, 0, len(list))
	for _, entry := range list {
		pair, ok := asList(entry)
		if !ok || len(pair) != 2 {
			slog.Debug("dropping malformed node entry")
			continue
		}
		host, hostOK := asString(pair[0])
		port, portOK := asInt(pair[1])
		if !hostOK || !portOK {
			slog.Debug("dropping malformed node entry")
			continue
		}
		nodes = append(nodes, models.Node{Host: toText(host), Port: port})
	}
	return nodes
}

func decodeTextList(list []interface{}) []string {
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s, ok := asString(entry); ok {
			out = append(out, toText(s))
		}
	}
	return out
}

func decodeAnnounceList(list []interface{}) [][]string {
	tiers := make([][]string, 0, len(list))
	for _, entry := range list {
		tier, ok := asList(entry)
		if !ok {
			continue
		}
		tiers = append(tiers, decodeTextList(tier))
	}
	return tiers
}
