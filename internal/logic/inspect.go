package logic

import (
	"errors"
	"io"
	"log/slog"

	"github.com/WendelHime/torrentmeta/internal/decoder"
	"github.com/WendelHime/torrentmeta/internal/shared/models"
	"github.com/schollz/progressbar/v3"
)

type Inspector interface {
	Inspect(metafile io.Reader) (Report, error)
}

// Report is everything derived from one metafile: the typed model plus the
// identifier and the computed read-time values.
type Report struct {
	Name         string        `json:"name"`
	InfoHash     models.Hash   `json:"info_hash"`
	TotalSize    int64         `json:"total_size"`
	PieceLength  int64         `json:"piece_length"`
	PieceCount   int           `json:"piece_count"`
	Private      bool          `json:"private"`
	AnnounceURLs []string      `json:"announce_urls,omitempty"`
	Nodes        []models.Node `json:"nodes,omitempty"`
	Files        []models.File `json:"files,omitempty"`
	CreatedBy    string        `json:"created_by,omitempty"`
	Comment      string        `json:"comment,omitempty"`
	CreationDate *int64        `json:"creation_date,omitempty"`
}

type inspector struct {
	d   decoder.MetafileDecoder
	log *slog.Logger
}

func NewInspector(d decoder.MetafileDecoder, logger *slog.Logger) Inspector {
	return &inspector{d: d, log: logger}
}

func (i *inspector) Inspect(metafile io.Reader) (Report, error) {
	bar := progressbar.DefaultBytes(-1, "reading metafile")
	defer bar.Close()

	i.log.Info("decoding metafile")
	meta, err := i.d.Decode(io.TeeReader(metafile, bar))
	if err != nil {
		return Report{}, err
	}

	infoHash, err := meta.InfoHash()
	if err != nil {
		i.log.Error("failed to derive info hash", slog.Any("error", err))
		return Report{}, err
	}

	pieceHashes, err := meta.Info.PieceHashes()
	if err != nil {
		i.log.Error("pieces buffer is truncated", slog.Any("error", err))
		return Report{}, err
	}

	urls, err := meta.AnnounceURLs()
	if err != nil {
		// A nodes-only torrent is still inspectable.
		if !errors.Is(err, models.ErrNoAnnounce) {
			return Report{}, err
		}
		i.log.Warn("metafile has no announce urls", slog.Int("nodes", len(meta.Nodes)))
	}

	return Report{
		Name:         meta.Info.Name,
		InfoHash:     infoHash,
		TotalSize:    meta.TotalSize(),
		PieceLength:  meta.Info.PieceLength,
		PieceCount:   len(pieceHashes),
		Private:      meta.Info.Private != nil && *meta.Info.Private == 1,
		AnnounceURLs: urls,
		Nodes:        meta.Nodes,
		Files:        meta.Info.Files,
		CreatedBy:    meta.CreatedBy,
		Comment:      meta.Comment,
		CreationDate: meta.CreationDate,
	}, nil
}
