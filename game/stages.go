package game

// hangmanStages is indexed by error count. Stage 0 is the empty gallows; it
// exists so the indices line up but RenderHangman never draws it.
var hangmanStages = [MaxErrors + 1]string{
	`  +---+
      |
      |
      |
     ===
`,
	`  +---+
  O   |
      |
      |
     ===
`,
	`  +---+
  O   |
  |   |
      |
     ===
`,
	`  +---+
  O   |
 /|   |
      |
     ===
`,
	`  +---+
  O   |
 /|\  |
      |
     ===
`,
	`  +---+
  O   |
 /|\  |
 /    |
     ===
`,
	`  +---+
  O   |
 /|\  |
 / \  |
     ===
`,
}
