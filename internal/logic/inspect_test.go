package logic

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/WendelHime/torrentmeta/internal/decoder"
	"github.com/WendelHime/torrentmeta/internal/shared/models"
	"github.com/stretchr/testify/assert"
)

func newTestInspector() Inspector {
	return NewInspector(decoder.NewDecoder(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestInspect(t *testing.T) {
	var b strings.Builder
	b.WriteString("d")
	b.WriteString("8:announce31:http://tracker.example/announce")
	b.WriteString("10:created by11:torrentmeta")
	b.WriteString("4:info")
	b.WriteString("d6:lengthi12345e4:name10:sample.txt12:piece lengthi16384e")
	b.WriteString("6:pieces40:aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	b.WriteString("7:privatei1ee")
	b.WriteString("e")

	report, err := newTestInspector().Inspect(strings.NewReader(b.String()))
	assert.Nil(t, err)
	assert.Equal(t, "sample.txt", report.Name)
	assert.Equal(t, "c4d2ededa6c8146f4cfbc1439cb3f5899a358cb4", report.InfoHash.String())
	assert.Equal(t, int64(12345), report.TotalSize)
	assert.Equal(t, int64(16384), report.PieceLength)
	assert.Equal(t, 2, report.PieceCount)
	assert.True(t, report.Private)
	assert.Equal(t, []string{"http://tracker.example/announce"}, report.AnnounceURLs)
	assert.Equal(t, "torrentmeta", report.CreatedBy)
}

func TestInspectNodesOnlyTorrent(t *testing.T) {
	// No announce sources at all: the model reports ErrNoAnnounce, but the
	// inspector still produces a report for DHT-only torrents.
	metafile := "d5:nodesll21:router.bittorrent.comi6881eee4:infod4:name1:x12:piece lengthi16384eee"

	report, err := newTestInspector().Inspect(strings.NewReader(metafile))
	assert.Nil(t, err)
	assert.Empty(t, report.AnnounceURLs)
	assert.Equal(t, []models.Node{{Host: "router.bittorrent.com", Port: 6881}}, report.Nodes)
}

func TestInspectPropagatesFatalDecode(t *testing.T) {
	_, err := newTestInspector().Inspect(strings.NewReader("i42e"))
	assert.ErrorIs(t, err, decoder.ErrNotDictionary)
}

func TestInspectTruncatedPieces(t *testing.T) {
	metafile := "d4:infod4:name1:x12:piece lengthi16384e6:pieces25:aaaaaaaaaaaaaaaaaaaaaaaaaee"
	_, err := newTestInspector().Inspect(strings.NewReader(metafile))
	var notEnough models.NotEnoughBytesError
	assert.ErrorAs(t, err, &notEnough)
}
