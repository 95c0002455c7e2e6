package scale

// entries lists the scale words in ordinal order. The zero count of entry i
// is 7·2^i, so 倶胝 is 10^7 and 不可説不可説転 is 10^(7·2^122).
var entries = [Count]struct {
	name    string
	reading string
}{
	{"倶胝", "くてい"},
	{"阿庾多", "あゆた"},
	{"那由他", "なゆた"},
	{"頻波羅", "びんばら"},
	{"矜羯羅", "こんがら"},
	{"阿伽羅", "あから"},
	{"最勝", "さいしょう"},
	{"摩婆羅", "まばら"},
	{"阿婆羅", "あばら"},
	{"多婆羅", "たばら"},
	{"界分", "かいぶん"},
	{"普摩", "ふま"},
	{"禰摩", "ねま"},
	{"阿婆鈐", "あばけん"},
	{"弥伽婆", "みかば"},
	{"毘攞伽", "びらか"},
	{"毘伽婆", "びかば"},
	{"僧羯邏摩", "そうがらま"},
	{"毘薩羅", "びさら"},
	{"毘贍婆", "びせんば"},
	{"毘盛伽", "びじょうが"},
	{"毘素陀", "びすだ"},
	{"毘婆訶", "びばか"},
	{"毘薄底", "びばてい"},
	{"毘佉擔", "びきゃたん"},
	{"称量", "しょうりょう"},
	{"一持", "いちじ"},
	{"異路", "いろ"},
	{"顛倒", "てんどう"},
	{"三末耶", "さんまや"},
	{"毘睹羅", "びとら"},
	{"奚婆羅", "けいばら"},
	{"伺察", "しさつ"},
	{"周広", "しゅうこう"},
	{"高出", "こうしゅつ"},
	{"最妙", "さいみょう"},
	{"泥羅婆", "ないらば"},
	{"訶理婆", "かりば"},
	{"一動", "いちどう"},
	{"訶理蒲", "かりぼ"},
	{"訶理三", "かりさん"},
	{"奚魯伽", "けいろか"},
	{"達攞歩陀", "たつらほだ"},
	{"訶魯那", "かろな"},
	{"摩魯陀", "まろだ"},
	{"懺慕陀", "ざんぼだ"},
	{"瑿攞陀", "えいらだ"},
	{"摩魯摩", "まろま"},
	{"調伏", "ちょうぶく"},
	{"離憍慢", "りきょうまん"},
	{"不動", "ふどう"},
	{"極量", "ごくりょう"},
	{"阿麼怛羅", "あまたら"},
	{"勃麼怛羅", "ぼまたら"},
	{"伽麼怛羅", "がまたら"},
	{"那麼怛羅", "なまたら"},
	{"奚麼怛羅", "けいまたら"},
	{"鞞麼怛羅", "べいまたら"},
	{"鉢羅麼怛羅", "はらまたら"},
	{"尸婆麼怛羅", "しばまたら"},
	{"翳羅", "えいら"},
	{"薜羅", "べいら"},
	{"諦羅", "たいら"},
	{"偈羅", "げら"},
	{"窣歩羅", "そほら"},
	{"泥羅", "ないら"},
	{"計羅", "けいら"},
	{"細羅", "さいら"},
	{"睥羅", "へいら"},
	{"謎羅", "めいら"},
	{"娑攞荼", "しゃらだ"},
	{"謎魯陀", "めいろだ"},
	{"契魯陀", "けいろだ"},
	{"摩睹羅", "まとら"},
	{"娑母羅", "しゃもら"},
	{"阿野娑", "あやしゃ"},
	{"迦麼羅", "かまら"},
	{"摩伽婆", "まかば"},
	{"阿怛羅", "あたら"},
	{"醯魯耶", "けいろや"},
	{"薜魯婆", "べいろば"},
	{"羯羅波", "からは"},
	{"訶婆婆", "かばば"},
	{"毘婆羅", "びばら"},
	{"那婆羅", "なばら"},
	{"摩攞羅", "まらら"},
	{"娑婆羅", "しゃばら"},
	{"迷攞普", "めいらふ"},
	{"者麼羅", "しゃまら"},
	{"駄麼羅", "だまら"},
	{"鉢攞麼陀", "はらまだ"},
	{"毘迦摩", "びかま"},
	{"烏波跋多", "うはばた"},
	{"演説", "えんぜつ"},
	{"無尽", "むじん"},
	{"出生", "しゅっしょう"},
	{"無我", "むが"},
	{"阿畔多", "あばんた"},
	{"青蓮華", "しょうれんげ"},
	{"鉢頭摩", "はどま"},
	{"僧祇", "そうぎ"},
	{"趣", "しゅ"},
	{"至", "し"},
	{"阿僧祇", "あそうぎ"},
	{"阿僧祇転", "あそうぎてん"},
	{"無量", "むりょう"},
	{"無量転", "むりょうてん"},
	{"無辺", "むへん"},
	{"無辺転", "むへんてん"},
	{"無等", "むとう"},
	{"無等転", "むとうてん"},
	{"不可数", "ふかすう"},
	{"不可数転", "ふかすうてん"},
	{"不可称", "ふかしょう"},
	{"不可称転", "ふかしょうてん"},
	{"不可思", "ふかし"},
	{"不可思転", "ふかしてん"},
	{"不可量", "ふかりょう"},
	{"不可量転", "ふかりょうてん"},
	{"不可説", "ふかせつ"},
	{"不可説転", "ふかせつてん"},
	{"不可説不可説", "ふかせつふかせつ"},
	{"不可説不可説転", "ふかせつふかせつてん"},
}
