// Package assets는 번호 공 이미지(<번호>.png)를 준비합니다.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lottodisplay/logger"
)

// BallSize는 생성되는 공 이미지의 한 변 길이(px)입니다
const BallSize = 64

// 동행복권 공 색상 (1-10 노랑, 11-20 파랑, 21-30 빨강, 31-40 회색, 41-45 초록)
var ballColors = []color.RGBA{
	{0xfb, 0xc4, 0x00, 0xff},
	{0x69, 0xc8, 0xf2, 0xff},
	{0xff, 0x72, 0x72, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
	{0xb0, 0xd8, 0x40, 0xff},
}

// BallColor는 번호의 공 색상을 반환합니다
func BallColor(num int) color.RGBA {
	i := (num - 1) / 10
	i = min(max(i, 0), len(ballColors)-1)
	return ballColors[i]
}

// EnsureBalls는 dir에 first..last 번호 이미지가 없으면 생성하고 생성한 개수를 반환합니다
func EnsureBalls(dir string, first, last int) (int, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("이미지 디렉토리 생성 실패: %w", err)
	}

	created := 0
	for n := first; n <= last; n++ {
		path := filepath.Join(dir, strconv.Itoa(n)+".png")
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return created, fmt.Errorf("이미지 확인 실패: %w", err)
		}

		if err := writeBall(path, n); err != nil {
			return created, err
		}
		created++
	}

	if created > 0 {
		logger.Info("✅ 번호 이미지 %d개 생성: %s", created, dir)
	}
	return created, nil
}

func writeBall(path string, num int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("이미지 파일 생성 실패: %w", err)
	}

	if err := png.Encode(f, RenderBall(num)); err != nil {
		f.Close()
		return fmt.Errorf("PNG 인코딩 실패: %w", err)
	}
	return f.Close()
}

// RenderBall은 번호가 적힌 원형 공 이미지를 그립니다
func RenderBall(num int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BallSize, BallSize))

	c := BallColor(num)
	r := BallSize/2 - 1
	cx, cy := BallSize/2, BallSize/2
	for y := 0; y < BallSize; y++ {
		for x := 0; x < BallSize; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}

	// 7x13 글꼴로 작게 그린 뒤 2배로 확대
	label := strconv.Itoa(num)
	face := basicfont.Face7x13
	w := font.MeasureString(face, label).Ceil()
	h := face.Metrics().Height.Ceil()

	text := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  text,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)

	dst := image.Rect(cx-w, cy-h, cx+w, cy+h)
	xdraw.ApproxBiLinear.Scale(img, dst, text, text.Bounds(), xdraw.Over, nil)

	return img
}
