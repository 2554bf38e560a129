package bitmaps

var leftArt = []string{
	"...#",
	"..##",
	".###",
	"####",
	".###",
	"..##",
	"...#",
}

var rightArt = []string{
	"#...",
	"##..",
	"###.",
	"####",
	"###.",
	"##..",
	"#...",
}

var upArt = []string{
	"...#...",
	"..###..",
	".#####.",
	"#######",
}

var downArt = []string{
	"#######",
	".#####.",
	"..###..",
	"...#...",
}

var checkArt = []string{
	"..............",
	"............##",
	"...........###",
	"..........###.",
	".........###..",
	"........###...",
	"##.....###....",
	"###...###.....",
	".###.###......",
	"..#####.......",
	"...###........",
	"....#.........",
	"..............",
	"..............",
}

var crossArt = []string{
	"..............",
	".##........##.",
	".###......###.",
	"..###....###..",
	"...###..###...",
	"....######....",
	".....####.....",
	".....####.....",
	"....######....",
	"...###..###...",
	"..###....###..",
	".###......###.",
	".##........##.",
	"..............",
}

var backArt = []string{
	"..............",
	"....#.........",
	"...##.........",
	"..###########.",
	".############.",
	"..###########.",
	"...##......##.",
	"....#......##.",
	"...........##.",
	"...........##.",
	"....#########.",
	"....#########.",
	"..............",
	"..............",
}

var logoArt = []string{
	"..##########..",
	".#..........#.",
	"#............#",
	"#..###..###..#",
	"#..#.#..#.#..#",
	"#..###..###..#",
	"#............#",
	"#............#",
	"#..########..#",
	"#...#....#...#",
	"#....####....#",
	"#............#",
	".#..........#.",
	"..##########..",
}
