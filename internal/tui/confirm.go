package tui

// confirmOverwrite is shown before a restore replaces local data.
type confirmOverwrite struct{}

func (confirmOverwrite) View() string {
	content := "Restoring replaces ALL local data with the backup.\n"
	content += "A safety copy of the current data is taken first.\n\n"
	content += "Continue?  y yes    n no"
	return overlayBoxStyle.Render(content)
}

// confirmSafetyRestore is shown before a safety backup replaces local data.
type confirmSafetyRestore struct {
	id string
}

func (c confirmSafetyRestore) View() string {
	content := "Re-apply safety backup " + c.id + "?\n"
	content += "It replaces ALL local data. The current data is kept\n"
	content += "as a new safety backup first.\n\n"
	content += "Continue?  y yes    n no"
	return overlayBoxStyle.Render(content)
}
