package usecase

// Keyword tables for the deterministic intent pass. Kept as plain data so
// they can be tested and extended without touching the matching logic.
// Each list carries both the accented and the unaccented spelling, because
// farmers type either.

// greetingPrefixes match the whole question or a "prefix + space" start.
var greetingPrefixes = []string{
	"hi", "hii", "hello", "helo", "hey",
	"chào", "chao", "xin chào", "xin chao", "alo", "a lô",
}

// analysisKeywords ask for an assessment of the current state, no remedy.
var analysisKeywords = []string{
	"phân tích", "phan tich", "đánh giá", "danh gia", "nhận xét", "nhan xet",
	"hiện trạng", "hien trang", "tình trạng", "tinh trang",
	"kết quả", "ket qua", "đang như thế nào", "dang nhu the nao",
	"phân loại", "phan loai", "review",
	"coi giúp", "coi dum", "coi sao", "coi thử", "coi thu",
}

// adviceKeywords ask for a treatment plan or concrete action.
var adviceKeywords = []string{
	"tư vấn", "tu van", "xử lý", "xu ly", "giải pháp", "giai phap",
	"khuyến nghị", "khuyen nghi", "nên làm", "nen lam",
	"cải thiện", "cai thien", "hướng dẫn", "huong dan",
	"kế hoạch", "ke hoach", "làm sao", "lam sao", "cách", "cach",
	"phải làm gì", "phai lam gi", "giúp", "giup", "cứu", "cuu",
}

// shrimpTokens reference the animal itself; a symptom question must name
// the shrimp before symptom keywords count.
var shrimpTokens = []string{"tôm", "tom"}

// symptomKeywords describe abnormal signs or disease.
var symptomKeywords = []string{
	"dấu hiệu", "dau hieu", "triệu chứng", "trieu chung",
	"bơi", "boi", "bỏ ăn", "bo an", "đen mang", "den mang", "đứt râu", "dut rau",
	"mềm vỏ", "mem vo", "đỏ thân", "do than", "lờ đờ", "lo do", "nổi đầu", "noi dau",
	"chết", "chet", "đốm trắng", "dom trang", "gan tụy", "gan tuy",
	"phân trắng", "phan trang", "rụng râu", "rung rau", "rụng đuôi", "rung duoi",
	"đóng rong", "dong rong", "đóng nhớt", "dong nhot",
}

// metaKeywords ask about the assistant itself or how to use it.
var metaKeywords = []string{
	"bạn là ai", "ban la ai", "giới thiệu", "gioi thieu",
	"help", "giúp tôi", "giup toi", "hướng dẫn dùng", "huong dan dung",
}
