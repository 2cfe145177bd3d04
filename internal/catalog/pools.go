// internal/catalog/pools.go
package catalog

import (
	"github.com/cat-xierluo/falvren2025/internal/models"
)

// 收件人名字池
func defaultNames() []string {
	return []string{
		"Annie", "Alex", "Lily", "Kevin", "Sophie", "David", "Emma",
		"Michael", "Linda", "Jason", "张律", "王总", "李总", "陈经理",
	}
}

// 所有可用城市
func defaultCities() []string {
	return []string{
		"北京", "上海", "深圳", "广州", "杭州", "成都",
		"苏州", "南京", "武汉", "西安", "重庆", "天津",
		"长沙", "青岛", "大连", "厦门", "昆明", "贵阳",
	}
}

// 城市特色内容
func defaultCityFeatures() map[string]models.CityFeature {
	return map[string]models.CityFeature{
		"北京": {Drink: "豆汁", Food: "烤鸭", Spot: "三里屯", Weather: "干燥多风", Transportation: "堵车"},
		"上海": {Drink: "咖啡", Food: "生煎包", Spot: "外滩", Weather: "湿润多雨", Transportation: "地铁"},
		"深圳": {Drink: "奶茶", Food: "早茶点心", Spot: "深圳湾", Weather: "温暖湿润", Transportation: "地铁"},
		"广州": {Drink: "凉茶", Food: "早茶", Spot: "珠江新城", Weather: "湿热", Transportation: "地铁"},
		"杭州": {Drink: "龙井茶", Food: "西湖醋鱼", Spot: "西湖", Weather: "温和", Transportation: "共享单车"},
		"成都": {Drink: "盖碗茶", Food: "火锅", Spot: "春熙路", Weather: "多云雾", Transportation: "地铁"},
		"苏州": {Drink: "碧螺春", Food: "苏式面", Spot: "平江路", Weather: "温和", Transportation: "地铁", EasterEgg: "苏州梅友机场"},
		"南京": {Drink: "鸭血粉丝汤", Food: "盐水鸭", Spot: "夫子庙", Weather: "四季分明", Transportation: "地铁"},
		"武汉": {Drink: "热干面配豆浆", Food: "热干面", Spot: "江汉路", Weather: "火炉城市", Transportation: "地铁"},
		"西安": {Drink: "冰峰", Food: "肉夹馍", Spot: "大雁塔", Weather: "干燥", Transportation: "地铁"},
		"重庆": {Drink: "老鹰茶", Food: "小面", Spot: "解放碑", Weather: "湿热多雾", Transportation: "轻轨穿楼"},
		"天津": {Drink: "面茶", Food: "煎饼果子", Spot: "五大道", Weather: "多风", Transportation: "地铁"},
		"长沙": {Drink: "奶茶", Food: "臭豆腐", Spot: "五一广场", Weather: "湿热", Transportation: "地铁"},
		"青岛": {Drink: "啤酒", Food: "海鲜", Spot: "五四广场", Weather: "海洋性", Transportation: "地铁"},
		"大连": {Drink: "海鲜粥", Food: "海鲜", Spot: "星海广场", Weather: "海洋性", Transportation: "轻轨"},
		"厦门": {Drink: "铁观音", Food: "沙茶面", Spot: "鼓浪屿", Weather: "温暖湿润", Transportation: "BRT"},
		"昆明": {Drink: "普洱茶", Food: "过桥米线", Spot: "滇池", Weather: "四季如春", Transportation: "地铁"},
		"贵阳": {Drink: "折耳根水", Food: "丝娃娃", Spot: "甲秀楼", Weather: "凉爽", Transportation: "地铁"},
	}
}

// 通用文件名前缀
func defaultFilePrefixes() []string {
	return []string{
		"尽职调查报告", "法律意见书", "合同审查意见", "案件分析报告",
		"股权转让协议", "劳动合同", "保密协议", "投资协议", "合规报告",
		"诉讼策略分析", "仲裁申请书", "答辩状", "代理词",
	}
}

// 诉讼业务文件名前缀
func litigationFilePrefixes() []string {
	return []string{
		"起诉状", "答辩状", "代理词", "证据清单", "质证意见",
		"诉讼策略分析", "庭审提纲", "上诉状", "再审申请书",
		"保全申请书", "执行申请书", "管辖权异议", "回避申请书",
	}
}

// 非诉业务文件名前缀
func nonLitigationFilePrefixes() []string {
	return []string{
		"尽职调查报告", "法律意见书", "合同审查意见", "股权转让协议",
		"投资协议", "合规报告", "公司章程", "股东会决议",
		"并购方案", "尽职调查清单", "交易结构设计", "法律备忘录",
	}
}

// 文件名后缀
func defaultFileSuffixes() []string {
	return []string{
		"_最终版_v6_客户确认_再改一次",
		"_终稿_已修改_再核实",
		"_定稿_v8_领导审批_客户意见",
		"_最新版_v12_务必使用这个",
		"_终版_客户确认后再改_v5",
		"_已定稿_紧急修改_最新",
		"_v3_修改意见_待确认_0328",
		"_最终最终版_真的最后一次",
	}
}

// 邮件主题
func defaultEmailSubjects() []string {
	return []string{
		"尽职调查报告", "法律意见书（第三稿）", "合同修改意见",
		"关于XX项目的初步分析", "补充材料清单", "会议纪要及后续安排",
		"紧急 - 请审阅", "回复：关于合同条款的疑问",
	}
}

// AI 工具名
func defaultAINames() []string {
	return []string{"豆包", "Kimi", "DeepSeek"}
}

// 高频用语及其真实含义
func defaultPhrases() []models.PhrasePair {
	return []models.PhrasePair{
		{Phrase: "“这个问题我需要再核实一下”", Meaning: "我现在也不确定"},
		{Phrase: "“我们这边原则上是可以的”", Meaning: "实操很可能不行"},
		{Phrase: "“我理解您的感受”", Meaning: "但规则不允许"},
		{Phrase: "“这个时间节点比较紧张”", Meaning: "根本做不完"},
		{Phrase: "“我们会尽快处理”", Meaning: "不知道什么时候"},
		{Phrase: "“需要综合考虑各方面因素”", Meaning: "没有标准答案"},
	}
}

// 系统旁白池
func defaultNarrations() []models.SystemNarration {
	return []models.SystemNarration{
		{ID: "narration_1", Text: "系统未读取你的隐私\n但好像什么都知道"},
		{ID: "narration_2", Text: "数据为随机生成\n但你会觉得很熟悉"},
		{ID: "narration_3", Text: "这不是你的全部一年\n但已经足够真实"},
		{ID: "narration_4", Text: "有些内容\n不是记录\n是痕迹"},
		{ID: "narration_5", Text: "这份报告\n不需要准确\n只需要真实"},
		{ID: "narration_6", Text: "你看到的不是数据\n是一年的切片"},
		{ID: "narration_ai_1", Text: "AI 先回答了你要说的话\n你只好回答它的答案"},
		{ID: "narration_ai_2", Text: "系统检测到\n当事人更相信句号"},
		{ID: "narration_ai_3", Text: "你在做的不是纠错\n是边界维护"},
	}
}

// 年终结论池
func defaultConclusions() []models.Conclusion {
	return []models.Conclusion{
		{ID: "conclusion_2", MainText: "你不是变冷漠了", SubText: "你只是学会了\n在情绪和规则之间选择后者"},
		{ID: "conclusion_3", MainText: "你没有麻木", SubText: "你只是把敏感\n藏在了专业的外壳里"},
		{ID: "conclusion_4", MainText: "你不是不累", SubText: "你只是习惯了\n把疲惫当成工作的一部分"},
		{ID: "conclusion_6", MainText: "你不是无所谓", SubText: "你只是学会了\n在失望之前降低预期"},
		{ID: "conclusion_7", MainText: "你没有看透一切", SubText: "你只是比去年\n更清楚什么不会改变"},
		{ID: "conclusion_9", MainText: "你没有放弃理想", SubText: "你只是把它\n放在了更安全的地方"},
		{ID: "conclusion_10", MainText: "你不是不在乎了", SubText: "你只是学会了\n选择性在乎"},
		{ID: "conclusion_11", MainText: "你没有变得世故", SubText: "你只是知道了\n哪些话不用再说第二遍"},
		{ID: "conclusion_12", MainText: "你不是失去热情", SubText: "你只是把热情\n分配给了更值得的事"},
	}
}

// 作者标语库
func defaultTaglines() []string {
	return []string{
		"那个也还在改文书的律师",
		"改文书改到怀疑人生的律师",
		"和键盘最熟的律师",
		"咖啡是燃料的律师",
		"把 Ctrl+Z 当朋友的律师",
		"周末也在想文书的律师",
		"半夜也在改的律师",
		"文书改不动也得改的律师",
		"相信这一版是终版的律师",
		"为了一个词纠结半天的律师",
		"和标点符号较劲的律师",
		"终于改完了...等等还可以更好的律师",
		"客户的终版只是我的初稿的律师",
		"把简洁当成最高追求的律师",
		"在法律和文案之间找平衡的律师",
		"每个字都要斟酌的律师",
		"用文字战斗的律师",
		"相信好文书能改变结果的律师",
		"改到天荒地老的律师",
		"还在改，是的，还在改的律师",
		"以改文书为修行的律师",
		"追求完美的律师（虽然完美不存在）",
		"每一版都是最好的版本的律师",
		"法律文书强迫症患者",
		"对「对的」执着比对更强的律师",
		"把文字当成武器的律师",
	}
}
