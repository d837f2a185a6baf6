package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (a *App) showDiary() {
	if err := a.diary.Err(); err != nil {
		fmt.Fprintf(a.out, "Could not load diary: %s (try 'refresh')\n", err.Error())
		return
	}

	item := a.diary.Item()
	if item == nil {
		fmt.Fprintln(a.out, "No diary PDF uploaded. Use: upload <path> [display name]")
		return
	}
	fmt.Fprintf(a.out, "Diary PDF: %s (id %d), uploaded %s\n", a.diary.FileName(), item.ID, item.UploadedAt)
	fmt.Fprintln(a.out, "Commands: download [dir], upload <path> [display name]")
}

func (a *App) uploadDiaryCmd(ctx context.Context, path, customName string) {
	if a.diary.Upload(ctx, path, customName) == nil {
		a.showDiary()
	}
}

// downloadDiaryCmd saves the current diary PDF under its display name in
// destDir.
func (a *App) downloadDiaryCmd(ctx context.Context, destDir string) {
	name := a.diary.FileName()
	if name == "" {
		fmt.Fprintln(a.out, "No diary PDF uploaded yet")
		return
	}

	dest := filepath.Join(destDir, name)
	f, err := os.Create(dest)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	defer f.Close()

	if err := a.diary.Download(ctx, f); err != nil {
		os.Remove(dest)
		return
	}
	fmt.Fprintf(a.out, "Saved %s\n", dest)
}
