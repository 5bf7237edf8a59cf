package nameutil

// DefaultTable maps the traditional characters that commonly appear in
// tracker show names to their simplified forms. It is deliberately not a
// complete OpenCC-style dictionary; operators who need full coverage can
// inject their own table.
var DefaultTable = ConversionTable{
	'國': '国', '學': '学', '戰': '战', '鬥': '斗', '壞': '坏',
	'臺': '台', '灣': '湾', '龍': '龙', '鳳': '凤', '馬': '马',
	'鳥': '鸟', '魚': '鱼', '雲': '云', '電': '电', '話': '话',
	'語': '语', '說': '说', '讀': '读', '書': '书', '畫': '画',
	'圖': '图', '團': '团', '圓': '圆', '園': '园', '遠': '远',
	'運': '运', '動': '动', '場': '场', '報': '报', '記': '记',
	'譯': '译', '幾': '几', '機': '机', '氣': '气', '漢': '汉',
	'愛': '爱', '覺': '觉', '觀': '观', '見': '见', '視': '视',
	'親': '亲', '讓': '让', '認': '认', '識': '识', '變': '变',
	'樂': '乐', '藥': '药', '醫': '医', '體': '体', '禮': '礼',
	'點': '点', '麗': '丽', '歷': '历', '廳': '厅', '廣': '广',
	'慶': '庆', '應': '应', '戀': '恋', '歡': '欢', '歲': '岁',
	'歸': '归', '靈': '灵', '滅': '灭', '燈': '灯', '獨': '独',
	'獅': '狮', '貓': '猫', '蟲': '虫', '風': '风', '飛': '飞',
	'飯': '饭', '館': '馆', '騎': '骑', '驚': '惊', '傳': '传',
	'偉': '伟', '們': '们', '個': '个', '來': '来', '備': '备',
	'傷': '伤', '價': '价', '優': '优', '兒': '儿', '內': '内',
	'兩': '两', '軍': '军', '農': '农', '寫': '写', '決': '决',
	'況': '况', '淚': '泪', '滿': '满', '濟': '济', '潔': '洁',
	'澤': '泽', '無': '无', '燒': '烧', '營': '营', '爭': '争',
	'為': '为', '狀': '状', '獄': '狱', '獸': '兽', '現': '现',
	'瑪': '玛', '環': '环', '產': '产', '畢': '毕', '異': '异',
	'當': '当', '發': '发', '盜': '盗', '監': '监', '盤': '盘',
	'確': '确', '碼': '码', '礎': '础', '禍': '祸', '種': '种',
	'稱': '称', '積': '积', '穩': '稳', '窮': '穷', '筆': '笔',
	'簡': '简', '籃': '篮', '籠': '笼', '類': '类', '紅': '红',
	'紀': '纪', '約': '约', '純': '纯', '紙': '纸', '級': '级',
	'結': '结', '絕': '绝', '統': '统', '經': '经', '綠': '绿',
	'網': '网', '線': '线', '編': '编', '縣': '县', '總': '总',
	'繼': '继', '續': '续', '罰': '罚', '羅': '罗', '義': '义',
	'習': '习', '聖': '圣', '聞': '闻', '聯': '联', '聲': '声',
	'職': '职', '聽': '听', '膚': '肤', '臉': '脸', '與': '与',
	'興': '兴', '舊': '旧', '艦': '舰', '華': '华', '萬': '万',
	'葉': '叶', '蘭': '兰', '處': '处', '號': '号', '術': '术',
	'衛': '卫', '裝': '装', '裡': '里', '規': '规', '覽': '览',
	'計': '计', '訓': '训', '設': '设', '許': '许', '訴': '诉',
	'試': '试', '詩': '诗', '誰': '谁', '調': '调', '談': '谈',
	'論': '论', '謎': '谜', '講': '讲', '證': '证', '護': '护',
	'豐': '丰', '貝': '贝', '負': '负', '財': '财', '貴': '贵',
	'買': '买', '賣': '卖', '質': '质', '贏': '赢', '車': '车',
	'輕': '轻', '輪': '轮', '轉': '转', '辦': '办', '邊': '边',
	'遊': '游', '過': '过', '達': '达', '違': '违', '選': '选',
	'遺': '遗', '還': '还', '鄉': '乡', '釋': '释', '錄': '录',
	'錢': '钱', '錦': '锦', '鎖': '锁', '鏡': '镜', '鐘': '钟',
	'鐵': '铁', '長': '长', '門': '门', '開': '开', '間': '间',
	'關': '关', '陰': '阴', '陳': '陈', '陸': '陆', '陽': '阳',
	'隊': '队', '階': '阶', '際': '际', '隱': '隐', '雖': '虽',
	'雙': '双', '雜': '杂', '離': '离', '難': '难', '靜': '静',
	'頁': '页', '頂': '顶', '順': '顺', '領': '领', '頭': '头',
	'題': '题', '顏': '颜', '願': '愿', '顯': '显', '飾': '饰',
	'養': '养', '髮': '发', '鳴': '鸣', '黃': '黄', '齊': '齐',
	'龜': '龟', '劇': '剧', '劍': '剑', '俠': '侠', '櫻': '樱',
	'夢': '梦', '島': '岛', '險': '险', '賊': '贼', '從': '从',
	'隻': '只', '單': '单', '師': '师', '時': '时', '後': '后',
	'會': '会', '東': '东', '對': '对', '將': '将', '帶': '带',
	'幫': '帮', '復': '复', '憶': '忆', '擊': '击', '於': '于',
	'殺': '杀', '氷': '冰', '沒': '没', '溫': '温', '獵': '猎',
	'詛': '诅', '輯': '辑', '週': '周', '進': '进', '銀': '银',
}
