package model

import (
	"encoding/json"
	"strconv"
)

// IDはバックエンドの数値IDとゲストモードのUUIDの両方を受ける。
// JSONでは数値でも文字列でも来るので吸収する。
type ID string

func (i ID) String() string { return string(i) }

func (i ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(i))
}

func (i *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*i = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

// IDFromInt64は数値IDをIDに変換する（URL組み立て用）。
func IDFromInt64(n int64) ID {
	return ID(strconv.FormatInt(n, 10))
}
