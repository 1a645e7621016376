package event

import "errors"

// ErrJournalCorrupt indicates the journal's digest chain does not verify.
var ErrJournalCorrupt = errors.New("event: journal digest chain corrupt")
