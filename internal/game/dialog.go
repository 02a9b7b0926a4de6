package game

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

func (g *Game) openSoundFileDialog() error {
	if g.sound == nil {
		return errors.New("sound is disabled")
	}
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Pop Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := g.sound.LoadFile(filename); err != nil {
		return err
	}
	log.Printf("pop sound set to %s", filename)
	g.lastErr = nil
	return nil
}

// ShowError reports a fatal startup problem in a dialog, for window mode
// where stderr is often not visible.
func ShowError(err error) {
	if dErr := zenity.Error(err.Error(), zenity.Title("Circles"), zenity.ErrorIcon); dErr != nil {
		log.Printf("error dialog: %v", dErr)
	}
}
