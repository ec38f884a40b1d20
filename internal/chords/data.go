package chords

// catalogEntries is the full chord data set shipped with the app.
// Positions run low string to high; muted strings are left out.
var catalogEntries = []Chord{
	// Basic open chords: the 14-entry daily challenge pool
	{
		ID: "A", Name: "A Major", Category: CategoryBasic, AudioKey: "a_major",
		Positions: []FingerPosition{{"A", 0}, {"D", 2}, {"G", 2}, {"B", 2}, {"e", 0}},
	},
	{
		ID: "Am", Name: "A Minor", Category: CategoryBasic, AudioKey: "a_minor",
		Positions: []FingerPosition{{"A", 0}, {"D", 2}, {"G", 2}, {"B", 1}, {"e", 0}},
	},
	{
		ID: "B", Name: "B Major", Category: CategoryBasic, AudioKey: "b_major",
		Positions: []FingerPosition{{"A", 2}, {"D", 4}, {"G", 4}, {"B", 4}, {"e", 2}},
	},
	{
		ID: "Bm", Name: "B Minor", Category: CategoryBasic, AudioKey: "b_minor",
		Positions: []FingerPosition{{"A", 2}, {"D", 4}, {"G", 4}, {"B", 3}, {"e", 2}},
	},
	{
		ID: "C", Name: "C Major", Category: CategoryBasic, AudioKey: "c_major",
		Positions: []FingerPosition{{"A", 3}, {"D", 2}, {"G", 0}, {"B", 1}, {"e", 0}},
	},
	{
		ID: "Cm", Name: "C Minor", Category: CategoryBasic, AudioKey: "c_minor",
		Positions: []FingerPosition{{"A", 3}, {"D", 5}, {"G", 5}, {"B", 4}, {"e", 3}},
	},
	{
		ID: "D", Name: "D Major", Category: CategoryBasic, AudioKey: "d_major",
		Positions: []FingerPosition{{"D", 0}, {"G", 2}, {"B", 3}, {"e", 2}},
	},
	{
		ID: "Dm", Name: "D Minor", Category: CategoryBasic, AudioKey: "d_minor",
		Positions: []FingerPosition{{"D", 0}, {"G", 2}, {"B", 3}, {"e", 1}},
	},
	{
		ID: "E", Name: "E Major", Category: CategoryBasic, AudioKey: "e_major",
		Positions: []FingerPosition{{"E", 0}, {"A", 2}, {"D", 2}, {"G", 1}, {"B", 0}, {"e", 0}},
	},
	{
		ID: "Em", Name: "E Minor", Category: CategoryBasic, AudioKey: "e_minor",
		Positions: []FingerPosition{{"E", 0}, {"A", 2}, {"D", 2}, {"G", 0}, {"B", 0}, {"e", 0}},
	},
	{
		ID: "F", Name: "F Major", Category: CategoryBasic, AudioKey: "f_major",
		Positions: []FingerPosition{{"E", 1}, {"A", 3}, {"D", 3}, {"G", 2}, {"B", 1}, {"e", 1}},
	},
	{
		ID: "Fm", Name: "F Minor", Category: CategoryBasic, AudioKey: "f_minor",
		Positions: []FingerPosition{{"E", 1}, {"A", 3}, {"D", 3}, {"G", 1}, {"B", 1}, {"e", 1}},
	},
	{
		ID: "G", Name: "G Major", Category: CategoryBasic, AudioKey: "g_major",
		Positions: []FingerPosition{{"E", 3}, {"A", 2}, {"D", 0}, {"G", 0}, {"B", 0}, {"e", 3}},
	},
	{
		ID: "Gm", Name: "G Minor", Category: CategoryBasic, AudioKey: "g_minor",
		Positions: []FingerPosition{{"E", 3}, {"A", 5}, {"D", 5}, {"G", 3}, {"B", 3}, {"e", 3}},
	},

	// Barre chords, used in the barre practice mode
	{
		ID: "F#", Name: "F Sharp Major", Category: CategoryBarre, AudioKey: "f_sharp_major",
		Positions: []FingerPosition{{"E", 2}, {"A", 4}, {"D", 4}, {"G", 3}, {"B", 2}, {"e", 2}},
	},
	{
		ID: "F#m", Name: "F Sharp Minor", Category: CategoryBarre, AudioKey: "f_sharp_minor",
		Positions: []FingerPosition{{"E", 2}, {"A", 4}, {"D", 4}, {"G", 2}, {"B", 2}, {"e", 2}},
	},
	{
		ID: "G#m", Name: "G Sharp Minor", Category: CategoryBarre, AudioKey: "g_sharp_minor",
		Positions: []FingerPosition{{"E", 4}, {"A", 6}, {"D", 6}, {"G", 4}, {"B", 4}, {"e", 4}},
	},
	{
		ID: "Bb", Name: "B Flat Major", Category: CategoryBarre, AudioKey: "b_flat_major",
		Positions: []FingerPosition{{"A", 1}, {"D", 3}, {"G", 3}, {"B", 3}, {"e", 1}},
	},
	{
		ID: "Bbm", Name: "B Flat Minor", Category: CategoryBarre, AudioKey: "b_flat_minor",
		Positions: []FingerPosition{{"A", 1}, {"D", 3}, {"G", 3}, {"B", 2}, {"e", 1}},
	},
	{
		ID: "C#m", Name: "C Sharp Minor", Category: CategoryBarre, AudioKey: "c_sharp_minor",
		Positions: []FingerPosition{{"A", 4}, {"D", 6}, {"G", 6}, {"B", 5}, {"e", 4}},
	},

	// Blues (dominant 7th) chords
	{
		ID: "A7", Name: "A Seven", Category: CategoryBlues, AudioKey: "a_seven",
		Positions: []FingerPosition{{"A", 0}, {"D", 2}, {"G", 0}, {"B", 2}, {"e", 0}},
	},
	{
		ID: "B7", Name: "B Seven", Category: CategoryBlues, AudioKey: "b_seven",
		Positions: []FingerPosition{{"A", 2}, {"D", 1}, {"G", 2}, {"B", 0}, {"e", 2}},
	},
	{
		ID: "C7", Name: "C Seven", Category: CategoryBlues, AudioKey: "c_seven",
		Positions: []FingerPosition{{"A", 3}, {"D", 2}, {"G", 3}, {"B", 1}, {"e", 0}},
	},
	{
		ID: "D7", Name: "D Seven", Category: CategoryBlues, AudioKey: "d_seven",
		Positions: []FingerPosition{{"D", 0}, {"G", 2}, {"B", 1}, {"e", 2}},
	},
	{
		ID: "E7", Name: "E Seven", Category: CategoryBlues, AudioKey: "e_seven",
		Positions: []FingerPosition{{"E", 0}, {"A", 2}, {"D", 0}, {"G", 1}, {"B", 0}, {"e", 0}},
	},
	{
		ID: "F7", Name: "F Seven", Category: CategoryBlues, AudioKey: "f_seven",
		Positions: []FingerPosition{{"E", 1}, {"A", 3}, {"D", 1}, {"G", 2}, {"B", 1}, {"e", 1}},
	},
	{
		ID: "G7", Name: "G Seven", Category: CategoryBlues, AudioKey: "g_seven",
		Positions: []FingerPosition{{"E", 3}, {"A", 2}, {"D", 0}, {"G", 0}, {"B", 0}, {"e", 1}},
	},

	// Power chords
	{
		ID: "A5", Name: "A Five", Category: CategoryPower, AudioKey: "a_five",
		Positions: []FingerPosition{{"A", 0}, {"D", 2}, {"G", 2}},
	},
	{
		ID: "B5", Name: "B Five", Category: CategoryPower, AudioKey: "b_five",
		Positions: []FingerPosition{{"A", 2}, {"D", 4}, {"G", 4}},
	},
	{
		ID: "C5", Name: "C Five", Category: CategoryPower, AudioKey: "c_five",
		Positions: []FingerPosition{{"A", 3}, {"D", 5}, {"G", 5}},
	},
	{
		ID: "D5", Name: "D Five", Category: CategoryPower, AudioKey: "d_five",
		Positions: []FingerPosition{{"D", 0}, {"G", 2}, {"B", 3}},
	},
	{
		ID: "E5", Name: "E Five", Category: CategoryPower, AudioKey: "e_five",
		Positions: []FingerPosition{{"E", 0}, {"A", 2}, {"D", 2}},
	},
	{
		ID: "F5", Name: "F Five", Category: CategoryPower, AudioKey: "f_five",
		Positions: []FingerPosition{{"E", 1}, {"A", 3}, {"D", 3}},
	},
	{
		ID: "G5", Name: "G Five", Category: CategoryPower, AudioKey: "g_five",
		Positions: []FingerPosition{{"E", 3}, {"A", 5}, {"D", 5}},
	},
}
