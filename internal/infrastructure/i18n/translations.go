// Package i18n holds the static bilingual text dictionary used by the front
// end. A flat key→string table per language; lookups fall back to English.
package i18n

import "github.com/richchoi/hotel-system/internal/core/domain"

// Table returns the dictionary for the requested language. Unknown languages
// resolve to English.
func Table(lang domain.Language) map[string]string {
	if lang == domain.LangVN {
		return vn
	}
	return en
}

// Lookup translates a single key, falling back to the English entry and
// finally to the key itself so missing entries are visible, not empty.
func Lookup(lang domain.Language, key string) string {
	if s, ok := Table(lang)[key]; ok {
		return s
	}
	if s, ok := en[key]; ok {
		return s
	}
	return key
}

var en = map[string]string{
	"welcome":        "Welcome to RICHCHOI",
	"subtitle":       "Experience the pinnacle of luxury and elegance.",
	"bookNow":        "Book Now",
	"exploreRooms":   "Explore Rooms",
	"services":       "Premium Services",
	"login":          "Login",
	"logout":         "Logout",
	"dashboard":      "Admin Dashboard",
	"adminPanel":     "Management Console",
	"rooms":          "Rooms",
	"customers":      "Customers",
	"partners":       "Partners",
	"chatAssistant":  "AI Concierge",
	"typeMessage":    "Ask me anything...",
	"pricePerNight":  "night",
	"capacity":       "Guests",
	"payment":        "Payment",
	"scanQR":         "Scan QR Code to Pay",
	"paymentSuccess": "Payment Successful!",
	"footerDesc":     "A sanctuary of serenity and class.",
	"address":        "123 Luxury Blvd, Metropolis",
	"contact":        "Contact Us",
	"aboutUs":        "The Legacy",
	"aboutTitle":     "Redefining 5-Star Luxury",
	"signatureSuite": "The Presidential Experience",
	"checkIn":        "Check-in",
	"checkOut":       "Check-out",
	"total":          "Total",
	"nights":         "nights",
	"confirmDates":   "Confirm Dates",
	"proceedToPay":   "Proceed to Payment",
	"viewDetails":    "View Details",
	"backToRooms":    "Back to Rooms",
	"amenities":      "Amenities",
	"roomOverview":   "Room Overview",
	"signUp":         "Sign Up",
	"createAccount":  "Create Account",
	"fullName":       "Full Name",
	"email":          "Email Address",
	"phoneNumber":    "Phone Number",
	"guestLogin":     "Login as Guest",
	"adminLogin":     "Login as Admin",
	"userManagement": "User Management",
	"roomManagement": "Room Inventory",
	"toggleStatus":   "Toggle Status",
	"active":         "Active",
	"inactive":       "Inactive",
	"joinDate":       "Joined Date",
	"revenue":        "Revenue",
	"daily":          "Daily",
	"monthly":        "Monthly",
	"yearly":         "Yearly",
	"totalRooms":     "Total Rooms",
	"availableRooms": "Available",
	"bookedRooms":    "Booked",
	"occupancyRate":  "Occupancy Rate",
	"addRoom":        "Add New Room",
	"editRoom":       "Edit Room",
	"roomNameEn":     "Room Name (EN)",
	"roomNameVn":     "Room Name (VN)",
	"descEn":         "Description (EN)",
	"descVn":         "Description (VN)",
	"imageUrl":       "Image URL",
	"amenitiesHelp":  "Separate amenities with commas (e.g., Wifi, Pool)",
	"save":           "Save",
	"cancel":         "Cancel",
}

var vn = map[string]string{
	"welcome":        "Chào mừng đến RICHCHOI",
	"subtitle":       "Trải nghiệm đỉnh cao của sự sang trọng và đẳng cấp.",
	"bookNow":        "Đặt Phòng Ngay",
	"exploreRooms":   "Khám Phá Phòng",
	"services":       "Dịch Vụ Cao Cấp",
	"login":          "Đăng Nhập",
	"logout":         "Đăng Xuất",
	"dashboard":      "Trang Quản Trị",
	"adminPanel":     "Bảng Điều Khiển",
	"rooms":          "Phòng Ốc",
	"customers":      "Khách Hàng",
	"partners":       "Đối Tác",
	"chatAssistant":  "Trợ Lý AI",
	"typeMessage":    "Hỏi tôi bất cứ điều gì...",
	"pricePerNight":  "đêm",
	"capacity":       "Khách",
	"payment":        "Thanh Toán",
	"scanQR":         "Quét mã QR để thanh toán",
	"paymentSuccess": "Thanh toán thành công!",
	"footerDesc":     "Thánh địa của sự thanh bình và đẳng cấp.",
	"address":        "123 Đại lộ Sang Trọng, Đô thị",
	"contact":        "Liên Hệ",
	"aboutUs":        "Di Sản",
	"aboutTitle":     "Định Nghĩa Lại Đẳng Cấp 5 Sao",
	"signatureSuite": "Trải Nghiệm Tổng Thống",
	"checkIn":        "Ngày nhận phòng",
	"checkOut":       "Ngày trả phòng",
	"total":          "Tổng cộng",
	"nights":         "đêm",
	"confirmDates":   "Xác nhận ngày",
	"proceedToPay":   "Tiến hành thanh toán",
	"viewDetails":    "Xem Chi Tiết",
	"backToRooms":    "Quay lại danh sách phòng",
	"amenities":      "Tiện Nghi",
	"roomOverview":   "Tổng Quan",
	"signUp":         "Đăng Ký",
	"createAccount":  "Tạo Tài Khoản",
	"fullName":       "Họ và Tên",
	"email":          "Địa chỉ Email",
	"phoneNumber":    "Số Điện Thoại",
	"guestLogin":     "Đăng nhập Khách",
	"adminLogin":     "Đăng nhập Admin",
	"userManagement": "Quản Lý Người Dùng",
	"roomManagement": "Kho Phòng",
	"toggleStatus":   "Đổi Trạng Thái",
	"active":         "Hoạt động",
	"inactive":       "Bị khóa",
	"joinDate":       "Ngày tham gia",
	"revenue":        "Doanh Thu",
	"daily":          "Theo Ngày",
	"monthly":        "Theo Tháng",
	"yearly":         "Theo Năm",
	"totalRooms":     "Tổng Số Phòng",
	"availableRooms": "Còn Trống",
	"bookedRooms":    "Đã Đặt",
	"occupancyRate":  "Tỷ Lệ Lấp Đầy",
	"addRoom":        "Thêm Phòng Mới",
	"editRoom":       "Chỉnh Sửa Phòng",
	"roomNameEn":     "Tên Phòng (EN)",
	"roomNameVn":     "Tên Phòng (VN)",
	"descEn":         "Mô tả (EN)",
	"descVn":         "Mô tả (VN)",
	"imageUrl":       "Link Ảnh",
	"amenitiesHelp":  "Phân cách các tiện nghi bằng dấu phẩy (VD: Wifi, Bể bơi)",
	"save":           "Lưu",
	"cancel":         "Hủy",
}
