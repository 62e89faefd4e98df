package decoder

import (
	"fmt"
	"log/slog"

	"github.com/WendelHime/torrentmeta/internal/shared/models"
)

// PrivateFlagError reports an info dictionary whose private flag holds an
// integer other than 0 or 1. Unlike shape mismatches, which default, this
// aborts the whole decode: defaulting would misrepresent the torrent's
// privacy semantics.
type PrivateFlagError struct {
	Value int64
}

func (e PrivateFlagError) Error() string {
	return fmt.Sprintf("private flag must be 0 or 1, got %d", e.Value)
}

func decodeInfo(dict map[string]interface{}) (models.Info, error) {
	var info models.Info
	for key, value := range dict {
		switch toText(key) {
		case "name":
			if s, ok := asString(value); ok {
				info.Name = toText(s)
			}
		case "pieces":
			if s, ok := asString(value); ok {
				info.Pieces = []byte(s)
				slog.Debug("pieces buffer decoded", slog.Int("length", len(s)))
			}
		case "piece length":
			if n, ok := asInt(value); ok {
				info.PieceLength = n
			}
		case "md5sum":
			if s, ok := asString(value); ok {
				info.MD5Sum = toText(s)
			}
		case "length":
			if n, ok := asInt(value); ok {
				info.Length = &n
			}
		case "files":
			if list, ok := asList(value); ok {
				info.Files = decodeFiles(list)
			}
		case "private":
			n, ok := asInt(value)
			if !ok {
				continue
			}
			if n != 0 && n != 1 {
				return models.Info{}, PrivateFlagError{Value: n}
			}
			info.Private = &n
		case "path":
			if list, ok := asList(value); ok {
				info.Path = decodeTextList(list)
			}
		case "root hash":
			if s, ok := asString(value); ok {
				info.RootHash = toText(s)
			}
		case "source":
			if s, ok := asString(value); ok {
				info.Source = toText(s)
			}
		default:
			slog.Debug("skipping unrecognized info key", slog.String("key", toText(key)))
		}
	}
	return info, nil
}

// decodeFiles keeps well-formed file entries in document order; an entry
// that is not a dictionary is dropped rather than aborting the decode.
func decodeFiles(list []interface{}) []models.File {
	files := make([]models.File, 0, len(list))
	for _, entry := range list {
		dict, ok := asDict(entry)
		if !ok {
			slog.Debug("dropping malformed file entry")
			continue
		}
		files = append(files, decodeFile(dict))
	}
	return files
}

func decodeFile(dict map[string]interface{}) models.File {
	var file models.File
	for key, value := range dict {
		switch toText(key) {
		case "path":
			if list, ok := asList(value); ok {
				file.Path = decodeTextList(list)
			}
		case "length":
			if n, ok := asInt(value); ok {
				file.Length = n
			}
		case "md5sum":
			if s, ok := asString(value); ok {
				file.MD5Sum = toText(s)
			}
		default:
			slog.Debug("skipping unrecognized file key", slog.String("key", toText(key)))
		}
	}
	return file
}
