package premove

import "fmt"

type Color int8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColor 接受 "white"/"black" 及其首字母
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("invalid color: %q", s)
}

// Role 是棋子种类标签。同一个标签在不同变体里可能对应不同走法（如 janggi 的 bishop）。
type Role string

const (
	RoleKing   Role = "king"
	RoleQueen  Role = "queen"
	RoleRook   Role = "rook"
	RoleBishop Role = "bishop"
	RoleKnight Role = "knight"
	RolePawn   Role = "pawn"

	// 复合 / 童话棋子
	RoleChancellor Role = "chancellor"
	RoleArchbishop Role = "archbishop"
	RoleCentaur    Role = "centaur"
	RoleAmazon     Role = "amazon"
	RoleWazir      Role = "wazir"
	RoleFerz       Role = "ferz"
	RoleHawk       Role = "hawk"
	RoleElephant   Role = "elephant"
	RoleCannon     Role = "cannon"

	// musketeer
	RoleLeopard  Role = "leopard"
	RoleUnicorn  Role = "unicorn"
	RoleDragon   Role = "dragon"
	RoleSpider   Role = "spider"
	RoleFortress Role = "fortress"

	// 象棋 / 朝鲜象棋
	RoleAdvisor Role = "advisor"
	RoleBanner  Role = "banner"
	RoleSoldier Role = "soldier"

	// makruk / sittuyin
	RoleKhon Role = "khon"
	RoleMet  Role = "met"

	// 将棋
	RoleLance  Role = "lance"
	RoleSilver Role = "silver"
	RoleGold   Role = "gold"

	// dobutsu
	RoleLion    Role = "lion"
	RoleGiraffe Role = "giraffe"
	RoleChick   Role = "chick"

	// 禽将棋
	RolePhoenix    Role = "phoenix"
	RoleCrane      Role = "crane"
	RolePheasant   Role = "pheasant"
	RoleLeftQuail  Role = "leftquail"
	RoleRightQuail Role = "rightquail"
	RoleFalcon     Role = "falcon"
	RoleSwallow    Role = "swallow"

	// shinobi
	RoleHorse   Role = "horse"
	RoleCaptain Role = "captain"
	RoleMonk    Role = "monk"
	RoleNinja   Role = "ninja"

	// orda
	RoleLancer  Role = "lancer"
	RoleKheshig Role = "kheshig"
	RoleArcher  Role = "archer"
	RoleYurt    Role = "yurt"

	// empire
	RoleEagle    Role = "eagle"
	RoleCardinal Role = "cardinal"
	RoleTower    Role = "tower"
	RoleDuke     Role = "duke"

	// spartan
	RoleLieutenant Role = "lieutenant"
	RoleGeneral    Role = "general"
	RoleWarlord    Role = "warlord"
	RoleHoplite    Role = "hoplite"
)

type Piece struct {
	Role     Role  `json:"role"`
	Color    Color `json:"color"`
	Promoted bool  `json:"promoted,omitempty"`
}

func (p Piece) String() string {
	s := p.Color.String() + " " + string(p.Role)
	if p.Promoted {
		s = "promoted " + s
	}
	return s
}

// Pieces 是调用方持有的棋盘快照，引擎只读不写
type Pieces map[Key]Piece

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Contains(p Position) bool {
	return p.File >= 0 && p.File < d.Width && p.Rank >= 0 && p.Rank < d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}
