package service

import (
	"time"

	"tipcloud/internal/core/domain"
)

const day = 24 * time.Hour

// seedCatalogue is the built-in set of DJs shown alongside registered
// profiles. Timestamps are relative to now so "newest" ordering stays
// meaningful.
func seedCatalogue(now time.Time) []domain.DJProfile {
	type seed struct {
		id, name, genre, bio, slug, wallet, image string
		followers                                 int64
		age, updated                              time.Duration
	}

	seeds := []seed{
		{"seed-1", "DJ Rhythmic", "House", "Bringing the best house beats from NYC to the world. Over 10 years of experience making crowds dance.",
			"dj-rhythmic", "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", "photo-1571330735066-03aaa9429d89", 4200, 0, 0},
		{"seed-2", "Mixmaster Flow", "Hip Hop", "Turntablist and producer specializing in hip hop and R&B mixes. Featured on major radio stations across the country.",
			"mixmaster-flow", "SP3FBR2AGK5H9QBDH3EEN6DF8EK8JY7RX8QJ5SVTE", "photo-1514525253161-7a46d19cd819", 2800, 0, 0},
		{"seed-3", "Electra Beats", "Techno", "Berlin-based techno producer pushing the boundaries of electronic music. Performing at major festivals worldwide.",
			"electra-beats", "SP1P72Z3704VMT3DMHPP2CB8TGQWGDBHD3RPR9GZS", "photo-1501386761578-eac5c94b800a", 5600, 0, 0},
		{"seed-4", "Melody Maker", "Trance", "Creating uplifting trance music that takes listeners on a journey. Regular appearances at clubs across Europe and Asia.",
			"melody-maker", "SP3K8BC0PPEVCV7NZ6QSRWPQ2JE9E5B6N3PA0KBR9", "photo-1470225620780-dba8ba36b745", 3900, 0, 0},
		{"seed-5", "Bass King", "Drum & Bass", "Specializing in heavy bass drops and intricate drum patterns. Known for energetic live performances and unique sound design.",
			"bass-king", "SP2C2YFP12AJZB4MABJBAJ55XECVS7E4PMMZ89YZR", "photo-1493225457124-a3eb161ffa5f", 4800, 0, 0},
		{"seed-6", "Vinyl Virtuoso", "Lo-Fi", "Creating chill beats perfect for studying or relaxing. Specializing in lo-fi hip hop with jazz influences and nostalgic vinyl scratches.",
			"vinyl-virtuoso", "SP4A1PRXPNMB3A7DDZQRJ9J7FN2JSFEJXQ3C2ZBR6", "photo-1508700115892-45ecd05ae2ad", 6700, 3 * day, 2 * day},
		{"seed-7", "Tropical Thunder", "Tropical House", "Bringing the beach vibes to your speakers with uplifting tropical house tracks. Inspired by ocean waves and island getaways.",
			"tropical-thunder", "SP1Y5YSTAHZ88XYK1VPDH24GY0HPX5J4JECTMY4A1", "photo-1533174072545-7a4b6ad7a6c3", 5200, 7 * day, 5 * day},
		{"seed-8", "Midnight Groove", "Deep House", "Late night deep house sessions that transport you to underground clubs. Known for hypnotic beats and atmospheric soundscapes.",
			"midnight-groove", "SP2KAF9RF86PVX3NEE27DFV1CQX0T4WGR41X3S45C", "photo-1506157786151-b8491531f063", 7800, 14 * day, 10 * day},
		{"seed-9", "Quantum Beats", "Experimental", "Pushing the boundaries of electronic music with innovative sound design and experimental arrangements. Expect the unexpected.",
			"quantum-beats", "SP3D6PV2ACBPEKYJTCMH7HEN02KP87QSP8KTEH335", "photo-1563089145-599997674d42", 3300, 21 * day, 18 * day},
		{"seed-10", "Neon Pulse", "Synthwave", "Retro-futuristic synthwave inspired by 80s movies and video games. Creating nostalgic electronic soundtracks for night drives.",
			"neon-pulse", "SP2H8PY27SEZ03MWRKS5XABZYQN17ETGQS3527SA5", "photo-1514525253161-7a46d19cd819", 6100, 30 * day, 25 * day},
	}

	out := make([]domain.DJProfile, 0, len(seeds))
	for _, s := range seeds {
		image := "https://images.unsplash.com/" + s.image + "?q=80&w=2070&auto=format&fit=crop"
		out = append(out, domain.DJProfile{
			ID:            s.id,
			Name:          s.name,
			Genre:         s.genre,
			Bio:           s.bio,
			SoundCloudURL: "https://soundcloud.com/" + s.slug,
			WalletAddress: s.wallet,
			ImageURL:      &image,
			Followers:     s.followers,
			CreatedAt:     now.Add(-s.age),
			UpdatedAt:     now.Add(-s.updated),
		})
	}
	return out
}
