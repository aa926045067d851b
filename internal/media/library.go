package media

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gallerysync/internal/logger"
	"gallerysync/models"
)

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".heic": {}, ".webp": {}, ".bmp": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".avi": {}, ".mkv": {}, ".webm": {},
}

type directoryLibrary struct {
	root string
	log  *logger.Logger
}

// NewDirectoryLibrary returns a [Library] backed by the media files
// under root. Non-media files and subdirectories are ignored.
func NewDirectoryLibrary(root string, log *logger.Logger) Library {
	return &directoryLibrary{root: root, log: log}
}

// RequestPermission implements [Library]. Access is granted when the
// library root exists, is a directory, and can be opened for reading.
// A missing or unreadable root is a denial, not an error: that is the
// caller's signal to surface "permission denied" to the user.
func (l *directoryLibrary) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(l.root)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat media root: %w", err)
	}
	if !info.IsDir() {
		return false, nil
	}

	dir, err := os.Open(l.root)
	if err != nil {
		if os.IsPermission(err) {
			return false, nil
		}
		return false, fmt.Errorf("open media root: %w", err)
	}
	defer dir.Close()

	return true, nil
}

// FetchAssets implements [Library]. The listing is sorted newest first
// by file modification time, matching how a photo library presents its
// camera roll.
func (l *directoryLibrary) FetchAssets(ctx context.Context) ([]Asset, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read media root: %w", err)
	}

	assets := make([]Asset, 0, len(entries))
	for _, entry := range entries {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		mediaType, ok := mediaTypeForName(entry.Name())
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// the file disappeared between ReadDir and Info
			l.log.Warn().Err(err).Str("name", entry.Name()).Msg("skipping unreadable media entry")
			continue
		}

		assets = append(assets, l.assetFromInfo(entry.Name(), mediaType, info))
	}

	sort.SliceStable(assets, func(i, j int) bool {
		ti, tj := assets[i].CreatedAt, assets[j].CreatedAt
		switch {
		case ti == nil:
			return false
		case tj == nil:
			return true
		case ti.Equal(*tj):
			return assets[i].ID < assets[j].ID
		default:
			return ti.After(*tj)
		}
	})

	return assets, nil
}

// ContentBytes implements [Library].
func (l *directoryLibrary) ContentBytes(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read asset content: %w", err)
	}

	return data, nil
}

func (l *directoryLibrary) assetFromInfo(name string, mediaType models.MediaType, info fs.FileInfo) Asset {
	created := info.ModTime()
	return Asset{
		ID:        name,
		Ref:       filepath.Join(l.root, name),
		MediaType: mediaType,
		CreatedAt: &created,
		Size:      info.Size(),
	}
}

func mediaTypeForName(name string) (models.MediaType, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := imageExtensions[ext]; ok {
		return models.MediaImage, true
	}
	if _, ok := videoExtensions[ext]; ok {
		return models.MediaVideo, true
	}
	return models.MediaUnknown, false
}
