package kernel_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"

	"pagedb/kernel"
	"pagedb/kernel/mocks"
	"pagedb/pagedb"
)

func openTestDB(t *testing.T) *pagedb.PageDB {
	t.Helper()
	dir := t.TempDir()
	db, err := pagedb.Open(filepath.Join(dir, "db"), pagedb.PageDBConfig{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDriverUpdatePageRankUsesMockKernel(t *testing.T) {
	db := openTestDB(t)

	cp := pagedb.NewCrawledPage("http://a/")
	cp.AddLink("http://b/", 0)
	if _, err := db.Add(cp); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKernel := mocks.NewMockKernel(ctrl)
	mockKernel.EXPECT().
		Run(gomock.Any(), gomock.Any(), uint64(2)).
		Return(kernel.Result{Scores: []float32{0.6, 0.4}}, nil)

	mockSink := mocks.NewMockScoreSink(ctrl)
	mockSink.EXPECT().WriteVector("pagerank", []float32{0.6, 0.4})

	driver := kernel.NewDriver(db, mockSink, nil)
	if err := driver.UpdatePageRank(context.Background(), mockKernel); err != nil {
		t.Fatalf("UpdatePageRank: %v", err)
	}
}

func TestDriverUpdateHITSWritesBothVectors(t *testing.T) {
	db := openTestDB(t)

	cp := pagedb.NewCrawledPage("http://a/")
	cp.AddLink("http://b/", 0)
	if _, err := db.Add(cp); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKernel := mocks.NewMockKernel(ctrl)
	mockKernel.EXPECT().
		Run(gomock.Any(), gomock.Any(), uint64(2)).
		Return(kernel.Result{Hubs: []float32{1, 0}, Authorities: []float32{0, 1}}, nil)

	mockSink := mocks.NewMockScoreSink(ctrl)
	mockSink.EXPECT().WriteVector("hits_hub", []float32{1, 0})
	mockSink.EXPECT().WriteVector("hits_authority", []float32{0, 1})

	driver := kernel.NewDriver(db, mockSink, nil)
	if err := driver.UpdateHITS(context.Background(), mockKernel); err != nil {
		t.Fatalf("UpdateHITS: %v", err)
	}
}

func TestPageRankReferenceKernelOverMemoryStream(t *testing.T) {
	stream := pagedb.NewMemoryLinkStream([]pagedb.Edge{
		{From: 0, To: 1},
		{From: 1, To: 0},
	})

	k := kernel.NewPageRank()
	k.Iterations = 5
	result, err := k.Run(context.Background(), stream, 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(result.Scores))
	}
	if result.Scores[0] <= 0 || result.Scores[1] <= 0 {
		t.Fatalf("expected positive scores, got %+v", result.Scores)
	}
}

func TestHITSReferenceKernelOverMemoryStream(t *testing.T) {
	stream := pagedb.NewMemoryLinkStream([]pagedb.Edge{
		{From: 0, To: 1},
		{From: 1, To: 2},
	})

	k := kernel.NewHITS()
	k.Iterations = 5
	result, err := k.Run(context.Background(), stream, 3)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Hubs) != 3 || len(result.Authorities) != 3 {
		t.Fatalf("unexpected vector lengths: %+v", result)
	}
}

func TestDenseFileScoreSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sink := &kernel.DenseFileScoreSink{Dir: dir}

	if err := sink.WriteVector("pagerank", []float32{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("WriteVector: %v", err)
	}

	fi, err := os.Stat(filepath.Join(dir, "pagerank.f32"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() != 12 {
		t.Fatalf("expected 12 bytes, got %d", fi.Size())
	}
}
