// Package dataset bundles the participant CSV imported into the store on
// first run.
package dataset

import "embed"

//go:embed *.csv
var Files embed.FS

// ParticipantsFile is the bundled dataset consumed by the seeding workflow.
const ParticipantsFile = "participants.csv"
