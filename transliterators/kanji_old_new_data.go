package transliterators

import "sync"

// Code generated from kanji-old-new-form.json; DO NOT EDIT.

// Old-form (kyujitai) to new-form (shinjitai) pairs, keyed on the
// glyph-qualified variation sequence of the old form.
var kanjiOldNewPairs = [][2]string{
	{"\u4e9e\U000e0100", "\u4e9c\U000e0100"}, // 亞 to 亜
	{"\u60e1\U000e0100", "\u60aa\U000e0100"}, // 惡 to 悪
	{"\u58d3\U000e0100", "\u5727\U000e0100"}, // 壓 to 圧
	{"\u570d\U000e0100", "\u56f2\U000e0100"}, // 圍 to 囲
	{"\u7232\U000e0100", "\u70ba\U000e0100"}, // 爲 to 為
	{"\u91ab\U000e0100", "\u533b\U000e0100"}, // 醫 to 医
	{"\u58f9\U000e0100", "\u58f1\U000e0100"}, // 壹 to 壱
	{"\u7a3b\U000e0100", "\u7a32\U000e0100"}, // 稻 to 稲
	{"\u98ee\U000e0100", "\u98f2\U000e0100"}, // 飮 to 飲
	{"\u96b1\U000e0100", "\u96a0\U000e0100"}, // 隱 to 隠
	{"\u71df\U000e0100", "\u55b6\U000e0100"}, // 營 to 営
	{"\u69ae\U000e0100", "\u6804\U000e0100"}, // 榮 to 栄
	{"\u885e\U000e0100", "\u885b\U000e0100"}, // 衞 to 衛
	{"\u9a5b\U000e0100", "\u99c5\U000e0100"}, // 驛 to 駅
	{"\u5713\U000e0100", "\u5186\U000e0100"}, // 圓 to 円
	{"\u7de3\U000e0100", "\u7e01\U000e0100"}, // 緣 to 縁
	{"\u9e7d\U000e0100", "\u5869\U000e0100"}, // 鹽 to 塩
	{"\u5967\U000e0100", "\u5965\U000e0100"}, // 奧 to 奥
	{"\u61c9\U000e0100", "\u5fdc\U000e0100"}, // 應 to 応
	{"\u6b50\U000e0100", "\u6b27\U000e0100"}, // 歐 to 欧
	{"\u6bc6\U000e0100", "\u6bb4\U000e0100"}, // 毆 to 殴
	{"\u6afb\U000e0100", "\u685c\U000e0100"}, // 櫻 to 桜
	{"\u5047\U000e0100", "\u4eee\U000e0100"}, // 假 to 仮
	{"\u50f9\U000e0100", "\u4fa1\U000e0100"}, // 價 to 価
	{"\u756b\U000e0100", "\u753b\U000e0100"}, // 畫 to 画
	{"\u6703\U000e0100", "\u4f1a\U000e0100"}, // 會 to 会
	{"\u58de\U000e0100", "\u58ca\U000e0100"}, // 壞 to 壊
	{"\u61f7\U000e0100", "\u61d0\U000e0100"}, // 懷 to 懐
	{"\u7e6a\U000e0100", "\u7d75\U000e0100"}, // 繪 to 絵
	{"\u64f4\U000e0100", "\u62e1\U000e0100"}, // 擴 to 拡
	{"\u6bbc\U000e0100", "\u6bbb\U000e0100"}, // 殼 to 殻
	{"\u89ba\U000e0100", "\u899a\U000e0100"}, // 覺 to 覚
	{"\u5b78\U000e0100", "\u5b66\U000e0100"}, // 學 to 学
	{"\u5dbd\U000e0100", "\u5cb3\U000e0100"}, // 嶽 to 岳
	{"\u6a02\U000e0100", "\u697d\U000e0100"}, // 樂 to 楽
	{"\u52f8\U000e0100", "\u52e7\U000e0100"}, // 勸 to 勧
	{"\u5377\U000e0100", "\u5dfb\U000e0100"}, // 卷 to 巻
	{"\u6b61\U000e0100", "\u6b53\U000e0100"}, // 歡 to 歓
	{"\u7f50\U000e0100", "\u7f36\U000e0100"}, // 罐 to 缶
	{"\u89c0\U000e0100", "\u89b3\U000e0100"}, // 觀 to 観
	{"\u95dc\U000e0100", "\u95a2\U000e0100"}, // 關 to 関
	{"\u9677\U000e0100", "\u9665\U000e0100"}, // 陷 to 陥
	{"\u6c23\U000e0100", "\u6c17\U000e0100"}, // 氣 to 気
	{"\u6b78\U000e0100", "\u5e30\U000e0100"}, // 歸 to 帰
	{"\u9f9c\U000e0100", "\u4e80\U000e0100"}, // 龜 to 亀
	{"\u50de\U000e0100", "\u507d\U000e0100"}, // 僞 to 偽
	{"\u6232\U000e0100", "\u622f\U000e0100"}, // 戲 to 戯
	{"\u72a7\U000e0100", "\u72a0\U000e0100"}, // 犧 to 犠
	{"\u820a\U000e0100", "\u65e7\U000e0100"}, // 舊 to 旧
	{"\u64da\U000e0100", "\u62e0\U000e0100"}, // 據 to 拠
	{"\u64e7\U000e0100", "\u6319\U000e0100"}, // 擧 to 挙
	{"\u865b\U000e0100", "\u865a\U000e0100"}, // 虛 to 虚
	{"\u5cfd\U000e0100", "\u5ce1\U000e0100"}, // 峽 to 峡
	{"\u633e\U000e0100", "\u631f\U000e0100"}, // 挾 to 挟
	{"\u72f9\U000e0100", "\u72ed\U000e0100"}, // 狹 to 狭
	{"\u66c9\U000e0100", "\u6681\U000e0100"}, // 曉 to 暁
	{"\u5340\U000e0100", "\u533a\U000e0100"}, // 區 to 区
	{"\u9a45\U000e0100", "\u99c6\U000e0100"}, // 驅 to 駆
	{"\u52f3\U000e0100", "\u52f2\U000e0100"}, // 勳 to 勲
	{"\u5f91\U000e0100", "\u5f84\U000e0100"}, // 徑 to 径
	{"\u60e0\U000e0100", "\u6075\U000e0100"}, // 惠 to 恵
	{"\u63ed\U000e0100", "\u63b2\U000e0100"}, // 揭 to 掲
	{"\u6eaa\U000e0100", "\u6e13\U000e0100"}, // 溪 to 渓
	{"\u7d93\U000e0100", "\u7d4c\U000e0100"}, // 經 to 経
	{"\u7e7c\U000e0100", "\u7d99\U000e0100"}, // 繼 to 継
	{"\u8396\U000e0100", "\u830e\U000e0100"}, // 莖 to 茎
	{"\u87a2\U000e0100", "\u86cd\U000e0100"}, // 螢 to 蛍
	{"\u8f15\U000e0100", "\u8efd\U000e0100"}, // 輕 to 軽
	{"\u9dc4\U000e0100", "\u9d8f\U000e0100"}, // 鷄 to 鶏
	{"\u85dd\U000e0100", "\u82b8\U000e0100"}, // 藝 to 芸
	{"\u7f3a\U000e0100", "\u6b20\U000e0100"}, // 缺 to 欠
	{"\u5109\U000e0100", "\u5039\U000e0100"}, // 儉 to 倹
	{"\u528d\U000e0100", "\u5263\U000e0100"}, // 劍 to 剣
	{"\u5708\U000e0100", "\u570f\U000e0100"}, // 圈 to 圏
	{"\u6aa2\U000e0100", "\u691c\U000e0100"}, // 檢 to 検
	{"\u6b0a\U000e0100", "\u6a29\U000e0100"}, // 權 to 権
	{"\u737b\U000e0100", "\u732e\U000e0100"}, // 獻 to 献
	{"\u7e23\U000e0100", "\u770c\U000e0100"}, // 縣 to 県
	{"\u96aa\U000e0100", "\u967a\U000e0100"}, // 險 to 険
	{"\u986f\U000e0100", "\u9855\U000e0100"}, // 顯 to 顕
	{"\u9a57\U000e0100", "\u9a13\U000e0100"}, // 驗 to 験
	{"\u56b4\U000e0100", "\u53b3\U000e0100"}, // 嚴 to 厳
	{"\u6548\U000e0100", "\u52b9\U000e0100"}, // 效 to 効
	{"\u5ee3\U000e0100", "\u5e83\U000e0100"}, // 廣 to 広
	{"\u6046\U000e0100", "\u6052\U000e0100"}, // 恆 to 恒
	{"\u945b\U000e0100", "\u9271\U000e0100"}, // 鑛 to 鉱
	{"\u865f\U000e0100", "\u53f7\U000e0100"}, // 號 to 号
	{"\u570b\U000e0100", "\u56fd\U000e0100"}, // 國 to 国
	{"\u788e\U000e0100", "\u7815\U000e0100"}, // 碎 to 砕
	{"\u5291\U000e0100", "\u5264\U000e0100"}, // 劑 to 剤
	{"\u6fdf\U000e0100", "\u6e08\U000e0100"}, // 濟 to 済
	{"\u9f4b\U000e0100", "\u658e\U000e0100"}, // 齋 to 斎
	{"\u6b72\U000e0100", "\u6b73\U000e0100"}, // 歲 to 歳
	{"\u6b98\U000e0100", "\u6b8b\U000e0100"}, // 殘 to 残
	{"\u7d72\U000e0100", "\u7cf8\U000e0100"}, // 絲 to 糸
	{"\u53c3\U000e0100", "\u53c2\U000e0100"}, // 參 to 参
	{"\u6158\U000e0100", "\u60e8\U000e0100"}, // 慘 to 惨
	{"\u68e7\U000e0100", "\u685f\U000e0100"}, // 棧 to 桟
	{"\u8836\U000e0100", "\u8695\U000e0100"}, // 蠶 to 蚕
	{"\u8d0a\U000e0100", "\u8cdb\U000e0100"}, // 贊 to 賛
	{"\u9f52\U000e0100", "\u6b6f\U000e0100"}, // 齒 to 歯
	{"\u5152\U000e0100", "\u5150\U000e0100"}, // 兒 to 児
	{"\u8fad\U000e0100", "\u8f9e\U000e0100"}, // 辭 to 辞
	{"\u6fd5\U000e0100", "\u6e7f\U000e0100"}, // 濕 to 湿
	{"\u5be6\U000e0100", "\u5b9f\U000e0100"}, // 實 to 実
	{"\u820d\U000e0100", "\u820e\U000e0100"}, // 舍 to 舎
	{"\u5beb\U000e0100", "\u5199\U000e0100"}, // 寫 to 写
	{"\u91cb\U000e0100", "\u91c8\U000e0100"}, // 釋 to 釈
	{"\u58fd\U000e0100", "\u5bff\U000e0100"}, // 壽 to 寿
	{"\u6536\U000e0100", "\u53ce\U000e0100"}, // 收 to 収
	{"\u5f9e\U000e0100", "\u5f93\U000e0100"}, // 從 to 従
	{"\u6f81\U000e0100", "\u6e0b\U000e0100"}, // 澁 to 渋
	{"\u7378\U000e0100", "\u7363\U000e0100"}, // 獸 to 獣
	{"\u7e31\U000e0100", "\u7e26\U000e0100"}, // 縱 to 縦
	{"\u8085\U000e0100", "\u7c9b\U000e0100"}, // 肅 to 粛
	{"\u8655\U000e0100", "\u51e6\U000e0100"}, // 處 to 処
	{"\u7dd6\U000e0100", "\u7dd2\U000e0100"}, // 緖 to 緒
	{"\u654d\U000e0100", "\u53d9\U000e0100"}, // 敍 to 叙
	{"\u71d2\U000e0100", "\u713c\U000e0100"}, // 燒 to 焼
	{"\u7a31\U000e0100", "\u79f0\U000e0100"}, // 稱 to 称
	{"\u8b49\U000e0100", "\u8a3c\U000e0100"}, // 證 to 証
	{"\u4e58\U000e0100", "\u4e57\U000e0100"}, // 乘 to 乗
	{"\u5269\U000e0100", "\u5270\U000e0100"}, // 剩 to 剰
	{"\u58e4\U000e0100", "\u58cc\U000e0100"}, // 壤 to 壌
	{"\u5b43\U000e0100", "\u5b22\U000e0100"}, // 孃 to 嬢
	{"\u689d\U000e0100", "\u6761\U000e0100"}, // 條 to 条
	{"\u6de8\U000e0100", "\u6d44\U000e0100"}, // 淨 to 浄
	{"\u72c0\U000e0100", "\u72b6\U000e0100"}, // 狀 to 状
	{"\u758a\U000e0100", "\u7573\U000e0100"}, // 疊 to 畳
	{"\u8b93\U000e0100", "\u8b72\U000e0100"}, // 讓 to 譲
	{"\u91c0\U000e0100", "\u91b8\U000e0100"}, // 釀 to 醸
	{"\u56d1\U000e0100", "\u5631\U000e0100"}, // 囑 to 嘱
	{"\u89f8\U000e0100", "\u89e6\U000e0100"}, // 觸 to 触
	{"\u5be2\U000e0100", "\u5bdd\U000e0100"}, // 寢 to 寝
	{"\u613c\U000e0100", "\u614e\U000e0100"}, // 愼 to 慎
	{"\u771e\U000e0100", "\u771f\U000e0100"}, // 眞 to 真
	{"\u76e1\U000e0100", "\u5c3d\U000e0100"}, // 盡 to 尽
	{"\u5716\U000e0100", "\u56f3\U000e0100"}, // 圖 to 図
	{"\u7cb9\U000e0100", "\u7c8b\U000e0100"}, // 粹 to 粋
	{"\u9189\U000e0100", "\u9154\U000e0100"}, // 醉 to 酔
	{"\u96a8\U000e0100", "\u968f\U000e0100"}, // 隨 to 随
	{"\u9ad3\U000e0100", "\u9ac4\U000e0100"}, // 髓 to 髄
	{"\u6578\U000e0100", "\u6570\U000e0100"}, // 數 to 数
	{"\u6a1e\U000e0100", "\u67a2\U000e0100"}, // 樞 to 枢
	{"\u8072\U000e0100", "\u58f0\U000e0100"}, // 聲 to 声
	{"\u975c\U000e0100", "\u9759\U000e0100"}, // 靜 to 静
	{"\u9f4a\U000e0100", "\u6589\U000e0100"}, // 齊 to 斉
	{"\u651d\U000e0100", "\u6442\U000e0100"}, // 攝 to 摂
	{"\u7aca\U000e0100", "\u7a83\U000e0100"}, // 竊 to 窃
	{"\u5c08\U000e0100", "\u5c02\U000e0100"}, // 專 to 専
	{"\u6230\U000e0100", "\u6226\U000e0100"}, // 戰 to 戦
	{"\u6dfa\U000e0100", "\u6d45\U000e0100"}, // 淺 to 浅
	{"\u6f5b\U000e0100", "\u6f5c\U000e0100"}, // 潛 to 潜
	{"\u7e96\U000e0100", "\u7e4a\U000e0100"}, // 纖 to 繊
	{"\u8e10\U000e0100", "\u8df5\U000e0100"}, // 踐 to 践
	{"\u9322\U000e0100", "\u92ad\U000e0100"}, // 錢 to 銭
	{"\u79aa\U000e0100", "\u7985\U000e0100"}, // 禪 to 禅
	{"\u96d9\U000e0100", "\u53cc\U000e0100"}, // 雙 to 双
	{"\u641c\U000e0100", "\u635c\U000e0100"}, // 搜 to 捜
	{"\u63d2\U000e0100", "\u633f\U000e0100"}, // 插 to 挿
	{"\u5de2\U000e0100", "\u5de3\U000e0100"}, // 巢 to 巣
	{"\u722d\U000e0100", "\u4e89\U000e0100"}, // 爭 to 争
	{"\u7e3d\U000e0100", "\u7dcf\U000e0100"}, // 總 to 総
	{"\u8070\U000e0100", "\u8061\U000e0100"}, // 聰 to 聡
	{"\u838a\U000e0100", "\u8358\U000e0100"}, // 莊 to 荘
	{"\u88dd\U000e0100", "\u88c5\U000e0100"}, // 裝 to 装
	{"\u9a37\U000e0100", "\u9a12\U000e0100"}, // 騷 to 騒
	{"\u589e\U000e0100", "\u5897\U000e0100"}, // 增 to 増
	{"\u85cf\U000e0100", "\u8535\U000e0100"}, // 藏 to 蔵
	{"\u81df\U000e0100", "\u81d3\U000e0100"}, // 臟 to 臓
	{"\u5c6c\U000e0100", "\u5c5e\U000e0100"}, // 屬 to 属
	{"\u7e8c\U000e0100", "\u7d9a\U000e0100"}, // 續 to 続
	{"\u58ae\U000e0100", "\u5815\U000e0100"}, // 墮 to 堕
	{"\u9ad4\U000e0100", "\u4f53\U000e0100"}, // 體 to 体
	{"\u5c0d\U000e0100", "\u5bfe\U000e0100"}, // 對 to 対
	{"\u5e36\U000e0100", "\u5e2f\U000e0100"}, // 帶 to 帯
	{"\u6eef\U000e0100", "\u6ede\U000e0100"}, // 滯 to 滞
	{"\u81fa\U000e0100", "\u53f0\U000e0100"}, // 臺 to 台
	{"\u7027\U000e0100", "\u6edd\U000e0100"}, // 瀧 to 滝
	{"\u64c7\U000e0100", "\u629e\U000e0100"}, // 擇 to 択
	{"\u6fa4\U000e0100", "\u6ca2\U000e0100"}, // 澤 to 沢
	{"\u55ae\U000e0100", "\u5358\U000e0100"}, // 單 to 単
	{"\u64d4\U000e0100", "\u62c5\U000e0100"}, // 擔 to 担
	{"\u81bd\U000e0100", "\u80c6\U000e0100"}, // 膽 to 胆
	{"\u5718\U000e0100", "\u56e3\U000e0100"}, // 團 to 団
	{"\u5f48\U000e0100", "\u5f3e\U000e0100"}, // 彈 to 弾
	{"\u65b7\U000e0100", "\u65ad\U000e0100"}, // 斷 to 断
	{"\u9072\U000e0100", "\u9045\U000e0100"}, // 遲 to 遅
	{"\u665d\U000e0100", "\u663c\U000e0100"}, // 晝 to 昼
	{"\u87f2\U000e0100", "\u866b\U000e0100"}, // 蟲 to 虫
	{"\u9444\U000e0100", "\u92f3\U000e0100"}, // 鑄 to 鋳
	{"\u5ef3\U000e0100", "\u5e81\U000e0100"}, // 廳 to 庁
	{"\u5fb5\U000e0100", "\u5fb4\U000e0100"}, // 徵 to 徴
	{"\u807d\U000e0100", "\u8074\U000e0100"}, // 聽 to 聴
	{"\u6555\U000e0100", "\u52c5\U000e0100"}, // 敕 to 勅
	{"\u93ad\U000e0100", "\u93ae\U000e0100"}, // 鎭 to 鎮
	{"\u905e\U000e0100", "\u9013\U000e0100"}, // 遞 to 逓
	{"\u9435\U000e0100", "\u9244\U000e0100"}, // 鐵 to 鉄
	{"\u8f49\U000e0100", "\u8ee2\U000e0100"}, // 轉 to 転
	{"\u50b3\U000e0100", "\u4f1d\U000e0100"}, // 傳 to 伝
	{"\u9ede\U000e0100", "\u70b9\U000e0100"}, // 點 to 点
	{"\u9ee8\U000e0100", "\u515a\U000e0100"}, // 黨 to 党
	{"\u76dc\U000e0100", "\u76d7\U000e0100"}, // 盜 to 盗
	{"\u71c8\U000e0100", "\u706f\U000e0100"}, // 燈 to 灯
	{"\u7576\U000e0100", "\u5f53\U000e0100"}, // 當 to 当
	{"\u7368\U000e0100", "\u72ec\U000e0100"}, // 獨 to 独
	{"\u8b80\U000e0100", "\u8aad\U000e0100"}, // 讀 to 読
	{"\u5c46\U000e0100", "\u5c4a\U000e0100"}, // 屆 to 届
	{"\u7e69\U000e0100", "\u7e04\U000e0100"}, // 繩 to 縄
	{"\u8cb3\U000e0100", "\u5f10\U000e0100"}, // 貳 to 弐
	{"\u8166\U000e0100", "\u8133\U000e0100"}, // 腦 to 脳
	{"\u9738\U000e0100", "\u8987\U000e0100"}, // 霸 to 覇
	{"\u5ee2\U000e0100", "\u5ec3\U000e0100"}, // 廢 to 廃
	{"\u62dc\U000e0100", "\u62dd\U000e0100"}, // 拜 to 拝
	{"\u8ce3\U000e0100", "\u58f2\U000e0100"}, // 賣 to 売
	{"\u9ea5\U000e0100", "\u9ea6\U000e0100"}, // 麥 to 麦
	{"\u767c\U000e0100", "\u767a\U000e0100"}, // 發 to 発
	{"\u9aee\U000e0100", "\u9aea\U000e0100"}, // 髮 to 髪
	{"\u62d4\U000e0100", "\u629c\U000e0100"}, // 拔 to 抜
	{"\u883b\U000e0100", "\u86ee\U000e0100"}, // 蠻 to 蛮
	{"\u4f5b\U000e0100", "\u4ecf\U000e0100"}, // 佛 to 仏
	{"\u8b8a\U000e0100", "\u5909\U000e0100"}, // 變 to 変
	{"\u908a\U000e0100", "\u8fba\U000e0100"}, // 邊 to 辺
	{"\u8fa8\U000e0100", "\u5f01\U000e0100"}, // 辨 to 弁
	{"\u74e3\U000e0100", "\u5f01\U000e0100"}, // 瓣 to 弁
	{"\u7a57\U000e0100", "\u7a42\U000e0100"}, // 穗 to 穂
	{"\u5bf6\U000e0100", "\u5b9d\U000e0100"}, // 寶 to 宝
	{"\u8c50\U000e0100", "\u8c4a\U000e0100"}, // 豐 to 豊
	{"\u6c92\U000e0100", "\u6ca1\U000e0100"}, // 沒 to 没
	{"\u6eff\U000e0100", "\u6e80\U000e0100"}, // 滿 to 満
	{"\u5f4c\U000e0100", "\u5f25\U000e0100"}, // 彌 to 弥
	{"\u85e5\U000e0100", "\u85ac\U000e0100"}, // 藥 to 薬
	{"\u8b6f\U000e0100", "\u8a33\U000e0100"}, // 譯 to 訳
	{"\u8c6b\U000e0100", "\u4e88\U000e0100"}, // 豫 to 予
	{"\u9918\U000e0100", "\u4f59\U000e0100"}, // 餘 to 余
	{"\u8207\U000e0100", "\u4e0e\U000e0100"}, // 與 to 与
	{"\u8b7d\U000e0100", "\u8a89\U000e0100"}, // 譽 to 誉
	{"\u6416\U000e0100", "\u63fa\U000e0100"}, // 搖 to 揺
	{"\u6a23\U000e0100", "\u69d8\U000e0100"}, // 樣 to 様
	{"\u8b20\U000e0100", "\u8b21\U000e0100"}, // 謠 to 謡
	{"\u4f86\U000e0100", "\u6765\U000e0100"}, // 來 to 来
	{"\u8cf4\U000e0100", "\u983c\U000e0100"}, // 賴 to 頼
	{"\u4e82\U000e0100", "\u4e71\U000e0100"}, // 亂 to 乱
	{"\u89bd\U000e0100", "\u89a7\U000e0100"}, // 覽 to 覧
	{"\u9f8d\U000e0100", "\u7adc\U000e0100"}, // 龍 to 竜
	{"\u5169\U000e0100", "\u4e21\U000e0100"}, // 兩 to 両
	{"\u7375\U000e0100", "\u731f\U000e0100"}, // 獵 to 猟
	{"\u7da0\U000e0100", "\u7dd1\U000e0100"}, // 綠 to 緑
	{"\u58d8\U000e0100", "\u5841\U000e0100"}, // 壘 to 塁
	{"\u6dda\U000e0100", "\u6d99\U000e0100"}, // 淚 to 涙
	{"\u52f5\U000e0100", "\u52b1\U000e0100"}, // 勵 to 励
	{"\u79ae\U000e0100", "\u793c\U000e0100"}, // 禮 to 礼
	{"\u96b8\U000e0100", "\u96b7\U000e0100"}, // 隸 to 隷
	{"\u9748\U000e0100", "\u970a\U000e0100"}, // 靈 to 霊
	{"\u9f61\U000e0100", "\u9f62\U000e0100"}, // 齡 to 齢
	{"\u6200\U000e0100", "\u604b\U000e0100"}, // 戀 to 恋
	{"\u7210\U000e0100", "\u7089\U000e0100"}, // 爐 to 炉
	{"\u52de\U000e0100", "\u52b4\U000e0100"}, // 勞 to 労
	{"\u9304\U000e0100", "\u9332\U000e0100"}, // 錄 to 録
	{"\u7063\U000e0100", "\u6e7e\U000e0100"}, // 灣 to 湾
	{"\u6a9c\U000e0100", "\u6867\U000e0100"}, // 檜 to 桧
	{"\u8fbb\U000e0101", "\u8fbb\U000e0100"}, // 辻 (2004 glyph) to 辻 (90 glyph)
}

var (
	kanjiOldNewOnce  sync.Once
	kanjiOldNewCache map[string]string
)

func kanjiOldNewTable() map[string]string {
	kanjiOldNewOnce.Do(func() {
		kanjiOldNewCache = make(map[string]string, len(kanjiOldNewPairs))
		for _, pair := range kanjiOldNewPairs {
			kanjiOldNewCache[pair[0]] = pair[1]
		}
	})
	return kanjiOldNewCache
}
