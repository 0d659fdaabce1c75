// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package excerpt

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// FromHTML 取第一个非空段落，去掉标签后按 maxRunes 截断。
// 没有段落的时候，使用整段内容。
func FromHTML(content string, maxRunes int) string {
	var all, para strings.Builder
	inPara := false
	z := html.NewTokenizer(strings.NewReader(content))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return Truncate(collapse(all.String()), maxRunes)
		case html.TextToken:
			text := z.Text()
			all.Write(text)
			if inPara {
				para.Write(text)
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "p" && tt != html.SelfClosingTagToken {
				inPara = tt == html.StartTagToken
				if text := collapse(para.String()); !inPara && text != "" {
					return Truncate(text, maxRunes)
				}
				para.Reset()
			}
			if isBlock(name) {
				all.WriteByte(' ')
				para.WriteByte(' ')
			}
		}
	}
}

// Truncate 超过 maxRunes 的部分用 … 代替
func Truncate(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}

var blockTags = map[string]struct{}{
	"p": {}, "br": {}, "div": {}, "li": {}, "ul": {}, "ol": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"blockquote": {}, "pre": {}, "table": {}, "tr": {}, "td": {}, "th": {}, "hr": {},
}

func isBlock(name []byte) bool {
	_, ok := blockTags[string(name)]
	return ok
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
