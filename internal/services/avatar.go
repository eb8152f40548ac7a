package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/yungbote/portfolio-backend/internal/logger"
)

// AvatarService renders a monogram avatar (initials on a colored disc) as a
// PNG data URI. Images in this system persist inline, so the rendered avatar
// is embedded straight into the default profile document.
type AvatarService interface {
	MonogramDataURI(name string) (string, error)
}

type avatarService struct {
	log      *logger.Logger
	bgColors []color.NRGBA
	fontFace font.Face
}

func NewAvatarService(log *logger.Logger) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("could not parse avatar font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 206})

	return &avatarService{
		log: serviceLog,
		bgColors: []color.NRGBA{
			{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF},
			{R: 0x15, G: 0x65, B: 0xC0, A: 0xFF},
			{R: 0x6A, G: 0x1B, B: 0x9A, A: 0xFF},
			{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF},
			{R: 0xEF, G: 0x6C, B: 0x00, A: 0xFF},
			{R: 0x00, G: 0x83, B: 0x8F, A: 0xFF},
		},
		fontFace: face,
	}, nil
}

func (as *avatarService) MonogramDataURI(name string) (string, error) {
	initials := initialsFromName(name)
	bg := as.bgColors[colorIndex(name, len(as.bgColors))]

	const renderSize = 512
	dc := gg.NewContext(renderSize, renderSize)
	dc.DrawCircle(renderSize/2, renderSize/2, renderSize/2)
	dc.SetColor(bg)
	dc.Fill()
	dc.SetFontFace(as.fontFace)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(initials, renderSize/2, renderSize/2, 0.5, 0.5)

	// Downscale for a crisp edge at display size.
	const outSize = 256
	dst := image.NewRGBA(image.Rect(0, 0, outSize, outSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return "", fmt.Errorf("could not encode avatar: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func initialsFromName(name string) string {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		return string(firstRuneUpper(fields[0]))
	default:
		return string(firstRuneUpper(fields[0])) + string(firstRuneUpper(fields[len(fields)-1]))
	}
}

func firstRuneUpper(s string) rune {
	for _, r := range s {
		return unicode.ToUpper(r)
	}
	return '?'
}

// colorIndex is deterministic so the same name always renders the same disc.
func colorIndex(name string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return int(h.Sum32() % uint32(n))
}
