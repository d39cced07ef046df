package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BallClass는 로또 공 이미지에 붙는 CSS 클래스입니다
const BallClass = "lotto-ball"

// DefaultPageHTML은 표시 컴포넌트가 요구하는 요소를 모두 갖춘 기본 페이지입니다
const DefaultPageHTML = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>로또 6/45 추천 번호</title>
<style>
.lotto-ball { width: 48px; height: 48px; margin: 2px; }
.game { display: flex; align-items: center; margin: 8px 0; }
</style>
</head>
<body>
<h1 id="game-info"></h1>
<div class="game" id="game1"></div>
<div class="game" id="game2"></div>
<div class="game" id="game3"></div>
<div class="game" id="game4"></div>
<div class="game" id="game5"></div>
</body>
</html>
`

// Ball은 렌더링된 공 이미지 하나의 속성입니다
type Ball struct {
	Src   string
	Alt   string
	Class string
}

// Page는 goquery 문서 위에서 동작하는 표시 페이지입니다
type Page struct {
	doc *goquery.Document
}

// LoadPage는 HTML을 읽어 페이지를 만듭니다
func LoadPage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("HTML 파싱 실패: %w", err)
	}
	return &Page{doc: doc}, nil
}

// NewDefaultPage는 DefaultPageHTML로 페이지를 만듭니다
func NewDefaultPage() (*Page, error) {
	return LoadPage(strings.NewReader(DefaultPageHTML))
}

func (p *Page) element(id string) (*goquery.Selection, error) {
	sel := p.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil, fmt.Errorf("요소를 찾을 수 없습니다: #%s", id)
	}
	return sel, nil
}

// Has는 id 요소가 페이지에 있는지 확인합니다
func (p *Page) Has(id string) bool {
	_, err := p.element(id)
	return err == nil
}

// SetText는 id 요소의 텍스트를 교체합니다
func (p *Page) SetText(id, text string) error {
	sel, err := p.element(id)
	if err != nil {
		return err
	}
	sel.SetText(text)
	return nil
}

// Text는 id 요소의 텍스트를 반환합니다
func (p *Page) Text(id string) string {
	sel, err := p.element(id)
	if err != nil {
		return ""
	}
	return sel.Text()
}

// BallSrc는 번호 이미지 경로(<assetBase>/<번호>.png)를 반환합니다
func BallSrc(assetBase string, num int) string {
	return strings.TrimRight(assetBase, "/") + "/" + strconv.Itoa(num) + ".png"
}

// RenderGame은 슬롯의 내용을 비우고 번호마다 이미지 요소를 하나씩 추가합니다.
// 번호 범위는 검사하지 않습니다.
func (p *Page) RenderGame(slotID, assetBase string, numbers []int) error {
	slot, err := p.element(slotID)
	if err != nil {
		return err
	}

	slot.Empty()

	nodes := make([]*html.Node, 0, len(numbers))
	for _, num := range numbers {
		nodes = append(nodes, &html.Node{
			Type:     html.ElementNode,
			Data:     "img",
			DataAtom: atom.Img,
			Attr: []html.Attribute{
				{Key: "src", Val: BallSrc(assetBase, num)},
				{Key: "alt", Val: fmt.Sprintf("%d번", num)},
				{Key: "class", Val: BallClass},
			},
		})
	}
	slot.AppendNodes(nodes...)
	return nil
}

// Balls는 슬롯에 렌더링된 이미지 목록을 순서대로 반환합니다
func (p *Page) Balls(slotID string) []Ball {
	slot, err := p.element(slotID)
	if err != nil {
		return nil
	}

	var balls []Ball
	slot.Children().Each(func(i int, s *goquery.Selection) {
		if goquery.NodeName(s) != "img" {
			return
		}
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		class, _ := s.Attr("class")
		balls = append(balls, Ball{Src: src, Alt: alt, Class: class})
	})
	return balls
}

// SlotHTML은 슬롯의 내부 HTML을 반환합니다
func (p *Page) SlotHTML(slotID string) (string, error) {
	slot, err := p.element(slotID)
	if err != nil {
		return "", err
	}
	return slot.Html()
}

// HTML은 전체 문서를 직렬화합니다
func (p *Page) HTML() (string, error) {
	return p.doc.Html()
}
