package digits

import "buddha-num-conv/internal/token"

var (
	// Man marks the ten-thousands place.
	Man = token.New("万", "まん")

	// Rakusha marks the hundred-thousands grouping boundary (10^5).
	Rakusha = token.New("洛叉", "らくしゃ")

	// Comma replaces Rakusha in numeral mode when requested.
	Comma = token.Plain(",")

	// Zero is the full-kanji zero.
	Zero = token.New("〇", "れい")
)

// ones is indexed by digit; index 0 is empty.
var ones = [10]token.Token{
	{},
	{Text: "一", Reading: "いち"},
	{Text: "二", Reading: "に"},
	{Text: "三", Reading: "さん"},
	{Text: "四", Reading: "よん"},
	{Text: "五", Reading: "ご"},
	{Text: "六", Reading: "ろく"},
	{Text: "七", Reading: "なな"},
	{Text: "八", Reading: "はち"},
	{Text: "九", Reading: "きゅう"},
}

// tens is indexed by tens digit; 1 is written without 一.
var tens = [10]token.Token{
	{},
	{Text: "十", Reading: "じゅう"},
	{Text: "二十", Reading: "にじゅう"},
	{Text: "三十", Reading: "さんじゅう"},
	{Text: "四十", Reading: "よんじゅう"},
	{Text: "五十", Reading: "ごじゅう"},
	{Text: "六十", Reading: "ろくじゅう"},
	{Text: "七十", Reading: "ななじゅう"},
	{Text: "八十", Reading: "はちじゅう"},
	{Text: "九十", Reading: "きゅうじゅう"},
}

// hundreds carries the euphonic readings (さんびゃく, ろっぴゃく, はっぴゃく).
var hundreds = [10]token.Token{
	{},
	{Text: "百", Reading: "ひゃく"},
	{Text: "二百", Reading: "にひゃく"},
	{Text: "三百", Reading: "さんびゃく"},
	{Text: "四百", Reading: "よんひゃく"},
	{Text: "五百", Reading: "ごひゃく"},
	{Text: "六百", Reading: "ろっぴゃく"},
	{Text: "七百", Reading: "ななひゃく"},
	{Text: "八百", Reading: "はっぴゃく"},
	{Text: "九百", Reading: "きゅうひゃく"},
}

var thousands = [10]token.Token{
	{},
	{Text: "千", Reading: "せん"},
	{Text: "二千", Reading: "にせん"},
	{Text: "三千", Reading: "さんぜん"},
	{Text: "四千", Reading: "よんせん"},
	{Text: "五千", Reading: "ごせん"},
	{Text: "六千", Reading: "ろくせん"},
	{Text: "七千", Reading: "ななせん"},
	{Text: "八千", Reading: "はっせん"},
	{Text: "九千", Reading: "きゅうせん"},
}

// lowPlaces maps digit positions 0..3 to their combined digit+place names.
var lowPlaces = [4]*[10]token.Token{&ones, &tens, &hundreds, &thousands}
