package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// readFile is a seam for loading the image bytes in tests.
var readFile = os.ReadFile

// SetAvatar prompts for an image file and runs the two-phase upload.
// On failure the user sees one generic message regardless of which phase
// broke; details go to the log.
func (a *App) SetAvatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter path to image file:")
	if err != nil {
		return err
	}

	data, err := readFile(path)
	if err != nil {
		log.Printf("Cannot read file: %v", err)
		return err
	}

	user, err := a.profile.UpdateImage(ctx, filepath.Base(path), data)
	if err != nil {
		fmt.Println("Image upload failed")
		a.log.Error(ctx, "avatar update failed", "error", err)
		return err
	}

	fmt.Printf("Profile image updated: %s\n", user.ProfileImage)
	return nil
}

// WhoAmI renders the current view: session state and any open form.
func (a *App) WhoAmI(ctx context.Context) error {
	a.shell.Render(os.Stdout)
	return nil
}
