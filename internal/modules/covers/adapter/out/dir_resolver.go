package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"readlog/internal/modules/covers/domain"
	coversout "readlog/internal/modules/covers/port/out"
)

// DirResolver resolves covers against a flat directory of <book id>.jpg
// files, the layout the cover downloader produces.
type DirResolver struct {
	coversDir string
}

func NewDirResolver(coversDir string) coversout.Resolver {
	return &DirResolver{coversDir: coversDir}
}

func (r *DirResolver) Resolve(_ context.Context, bookID string) (domain.CoverStatus, error) {
	if strings.TrimSpace(bookID) == "" {
		return domain.CoverStatus{}, fmt.Errorf("book id is required")
	}
	path := filepath.Join(r.coversDir, bookID+".jpg")
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return domain.CoverStatus{BookID: bookID, Present: false, Path: path}, nil
	}
	if err != nil {
		return domain.CoverStatus{}, fmt.Errorf("stat cover: %w", err)
	}
	if info.IsDir() {
		return domain.CoverStatus{BookID: bookID, Present: false, Path: path}, nil
	}
	return domain.CoverStatus{BookID: bookID, Present: true, Path: path}, nil
}
