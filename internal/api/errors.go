package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Kindはレスポンスの失敗分類。statusから導出する。
type Kind int

const (
	KindNetwork Kind = iota
	KindUnauthorized
	KindValidation
	KindServer
)

func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// Errorはバックエンドの失敗レスポンス。Bodyは構造化されているとは限らない。
type Error struct {
	Status int
	Kind   Kind
	Body   []byte
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return "api: network error"
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Messageはエラーボディから人間向けメッセージを取り出す。
// 優先順: 文字列ボディ → detail → message → non_field_errors[0]
// → 最初のフィールドの文字列/配列値 → ボディそのまま → defaultMsg。
func (e *Error) Message(defaultMsg string) string {
	return extractMessage(e.Body, defaultMsg)
}

// Messageはerrが*Errorならそのメッセージ、そうでなければdefaultMsgを返す。
// 操作境界で{success, error}形式に変換するときに使う。
func Message(err error, defaultMsg string) string {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Message(defaultMsg)
	}
	return defaultMsg
}

func extractMessage(body []byte, defaultMsg string) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return defaultMsg
	}

	//JSON文字列のボディ
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		//オブジェクトでもJSONでもないならそのまま返す
		return string(trimmed)
	}

	if msg, ok := stringField(fields, "detail"); ok {
		return msg
	}
	if msg, ok := stringField(fields, "message"); ok {
		return msg
	}
	if raw, ok := fields["non_field_errors"]; ok {
		if msg, ok := firstArrayElement(raw); ok {
			return msg
		}
	}

	//フィールドエラー: ボディの出現順で最初の文字列/配列値を返す
	if msg, ok := firstFieldMessage(trimmed); ok {
		return msg
	}

	if len(fields) > 0 {
		return string(trimmed)
	}
	return defaultMsg
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func firstArrayElement(raw json.RawMessage) (string, bool) {
	var arr []any
	if err := json.Unmarshal(raw, &arr); err != nil || len(arr) == 0 {
		return "", false
	}
	return fmt.Sprintf("%v", arr[0]), true
}

// firstFieldMessageはキーの出現順を保つためトークン単位で走査する
// （mapに入れると順序が消える）。
func firstFieldMessage(body []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return "", false
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", false
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return "", false
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return "", false
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s, true
		}
		if msg, ok := firstArrayElement(raw); ok {
			return msg, true
		}
	}
	return "", false
}
