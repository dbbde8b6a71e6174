package usecase

import (
	"bytes"
	"text/template"
)

const outputRules = `
규칙:
1. 실제로 판매 중인 투어 상품만 웹 검색으로 찾아서 사용한다. 지어내지 않는다.
2. items는 최대 {{.MaxItems}}개이며 각 항목은 다음 필드를 갖는다:
   - title: 상품명 (문자열)
   - link: 상품 상세 페이지 URL (문자열)
   - course: 이동 경로 또는 일정 요약 (문자열, "A → B → C" 형식)
   - price: 1인 기준 가격 (원 단위 정수)
   - region: 행정구역을 시와 읍/면/동까지만 표기 (예: "제주시 우도면")
   - attributes: 상품의 특징을 나타내는 객체
3. attributes의 모든 값은 문자열이다. 숫자나 참/거짓 값도 반드시 문자열로 쓴다.
4. filters는 key, label, type, options를 갖는다.
   - type은 "single_select" 또는 "multi_select" 중 하나이다.
   - key는 items의 attributes에 실제로 존재하는 키여야 한다.
   - options는 {"label", "value"} 배열이며, value는 해당 key에 대해 items의 attributes에 실제로 존재하는 값과 정확히 같아야 한다.
   - price와 region 필터는 서버가 추가하므로 넣지 않는다.
5. 마크다운, 코드 블록, 설명 문장 없이 순수 JSON 하나만 출력한다.

출력 형식:
{"filters": [{"key": "...", "label": "...", "type": "single_select", "options": [{"label": "...", "value": "..."}]}], "items": [{"title": "...", "link": "...", "course": "...", "price": 0, "region": "...", "attributes": {"...": "..."}}]}
`

var (
	initialTmpl = template.Must(template.New("initial").Parse(
		`너는 제주도 여행 상품을 추천하는 큐레이터다. "{{.Location}}" 지역에서 참여할 수 있는 투어 상품을 찾아 아래 형식의 JSON으로 정리하라.
` + outputRules))

	continueTmpl = template.Must(template.New("continue").Parse(
		`직전에 제시한 투어 목록에 다음 조건을 추가로 적용해서 다시 추려라: "{{.Condition}}"
조건에 맞는 상품이 부족하면 웹 검색으로 조건을 만족하는 상품을 더 찾는다.
` + outputRules))
)

// PromptBuilder renders the instructions sent to the AI provider.
type PromptBuilder struct {
	maxItems int
}

func NewPromptBuilder(maxItems int) *PromptBuilder {
	if maxItems <= 0 {
		maxItems = 10
	}
	return &PromptBuilder{maxItems: maxItems}
}

func (p *PromptBuilder) Initial(location string) (string, error) {
	return render(initialTmpl, map[string]interface{}{
		"Location": location,
		"MaxItems": p.maxItems,
	})
}

func (p *PromptBuilder) Continue(condition string) (string, error) {
	return render(continueTmpl, map[string]interface{}{
		"Condition": condition,
		"MaxItems":  p.maxItems,
	})
}

func render(t *template.Template, data map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
