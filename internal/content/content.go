// Package content holds the static copy for the setlist, merch stand and cheat sheet.
package content

// Track is one entry of the setlist.
type Track struct {
	Title       string
	Description string
}

// Item is a merch-stand product.
type Item struct {
	Name  string
	Price string
}

// Card is a cheat-sheet rule.
type Card struct {
	Rule string
	Text string
}

const (
	Tagline    = "DON'T CONFORM. CONFIGURE."
	DidYouKnow = "Chromium and Copper are the punks of the periodic table. They steal an electron " +
		"from the 4s orbital to make their 3d shell more stable (half-full or full)."
	SetlistFooter = "* DOORS OPEN AT 1S • MOSH SAFELY *"
	QuizPitch     = "PROVE YOUR KNOWLEDGE IN THE QUIZ TO UNLOCK DIGITAL BADGES"
)

// Setlist returns tonight's lesson plan.
func Setlist() []Track {
	return []Track{
		{
			Title:       "TRACK 01: THE FOUNDATION (s-block)",
			Description: "Spherical pits. 1 box. Max 2 fans. The opening act that starts every show. H and He are the acoustic duo.",
		},
		{
			Title:       "TRACK 02: THE DUMBBELLS (p-block)",
			Description: "3 pits per level. Max 6 fans. Higher energy. Things get louder here. B through Ne bring the noise.",
		},
		{
			Title:       "TRACK 03: TRANSITION METAL MANIA (d-block)",
			Description: "5 pits. Max 10 fans. The complex stuff. Energy levels get weird here (4s fills before 3d!).",
		},
		{
			Title:       "ENCORE: THE REBELS (Cr & Cu)",
			Description: "They steal electrons from 4s to 3d to get that perfect half-full or full stability. Pure punk attitude.",
		},
	}
}

// Merch returns the store items.
func Merch() []Item {
	return []Item{
		{Name: "TOUR TEE", Price: "Sold Out"},
		{Name: "STICKER PACK", Price: "$5.00"},
	}
}

// CheatSheet returns the three filling rules.
func CheatSheet() []Card {
	return []Card{
		{Rule: "AUFBAU", Text: "Fill low energy orbitals first. Bottom to top. Build the energy up."},
		{Rule: "PAULI", Text: "Max 2 electrons per box. Must have opposite spins. No clones allowed."},
		{Rule: "HUND", Text: "Empty boxes first. Don't pair up unless you have to. Spread the vibe."},
	}
}
