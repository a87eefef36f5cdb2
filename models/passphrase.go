package models

// PassphraseInput is what the user typed into a passphrase form.
// Confirmation is empty on restore, where no second entry is asked for.
type PassphraseInput struct {
	Passphrase   string
	Confirmation string
}
