package memory

import (
	"time"

	"github.com/richchoi/hotel-system/internal/core/domain"
)

// SeedUsers returns the initial registry: one undeletable ADMIN and two
// GUESTs, one of them deactivated to exercise the status controls.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:         "1",
			Name:       "Rich Choi Administrator",
			Email:      "admin@richchoi.com",
			Role:       domain.RoleAdmin,
			AvatarURL:  "https://ui-avatars.com/api/?name=Admin&background=C5A028&color=fff",
			IsActive:   true,
			Phone:      "0999999999",
			JoinedDate: date(2023, 1, 1),
		},
		{
			ID:         "2",
			Name:       "John Doe",
			Email:      "guest@example.com",
			Role:       domain.RoleGuest,
			AvatarURL:  "https://ui-avatars.com/api/?name=John+Doe&background=0F172A&color=fff",
			IsActive:   true,
			Phone:      "0123456789",
			JoinedDate: date(2024, 5, 15),
		},
		{
			ID:         "3",
			Name:       "Jane Smith",
			Email:      "jane@example.com",
			Role:       domain.RoleGuest,
			AvatarURL:  "https://ui-avatars.com/api/?name=Jane+Smith&background=0F172A&color=fff",
			IsActive:   false,
			Phone:      "0987654321",
			JoinedDate: date(2024, 6, 20),
		},
	}
}

// SeedRooms returns the initial room inventory.
func SeedRooms() []domain.Room {
	return []domain.Room{
		{
			ID:   "1",
			Name: domain.LocalizedText{EN: "Royal Presidential Suite", VN: "Phòng Tổng Thống Hoàng Gia"},
			Description: domain.LocalizedText{
				EN: "The ultimate luxury experience with panoramic city views, private butler, and gold-plated amenities. This suite features a grand piano, a private library, and a dedicated security detail room.",
				VN: "Trải nghiệm sang trọng tột bậc với tầm nhìn toàn cảnh thành phố, quản gia riêng và tiện nghi mạ vàng. Phòng suite này có đàn piano lớn, thư viện riêng và phòng dành cho đội an ninh.",
			},
			Price:     5000,
			Capacity:  4,
			ImageURL:  "https://picsum.photos/800/600?random=1",
			Type:      domain.RoomPresidential,
			Available: true,
			Amenities: []domain.LocalizedText{
				{EN: "Private Butler", VN: "Quản gia riêng"},
				{EN: "Jacuzzi", VN: "Bồn sục Jacuzzi"},
				{EN: "Private Cinema", VN: "Rạp chiếu phim riêng"},
				{EN: "Bulletproof Glass", VN: "Kính chống đạn"},
			},
		},
		{
			ID:   "2",
			Name: domain.LocalizedText{EN: "Ocean View Deluxe", VN: "Phòng Deluxe Hướng Biển"},
			Description: domain.LocalizedText{
				EN: "Wake up to the sound of waves. Features a king-size bed, private balcony, and marble bathroom with soaking tub.",
				VN: "Thức dậy với tiếng sóng vỗ. Có giường cỡ King, ban công riêng và phòng tắm lát đá cẩm thạch với bồn ngâm.",
			},
			Price:     1200,
			Capacity:  2,
			ImageURL:  "https://picsum.photos/800/600?random=2",
			Type:      domain.RoomDeluxe,
			Available: true,
			Amenities: []domain.LocalizedText{
				{EN: "Ocean Balcony", VN: "Ban công hướng biển"},
				{EN: "King Bed", VN: "Giường King"},
				{EN: "Smart TV", VN: "TV thông minh"},
			},
		},
		{
			ID:   "3",
			Name: domain.LocalizedText{EN: "Executive Garden Suite", VN: "Phòng Suite Vườn Thượng Uyển"},
			Description: domain.LocalizedText{
				EN: "Surrounded by lush tropical gardens. Perfect for peace and privacy. Includes lounge access and afternoon tea.",
				VN: "Được bao quanh bởi những khu vườn nhiệt đới tươi tốt. Hoàn hảo cho sự yên bình và riêng tư. Bao gồm quyền lui tới sảnh chờ và trà chiều.",
			},
			Price:     2500,
			Capacity:  3,
			ImageURL:  "https://picsum.photos/800/600?random=3",
			Type:      domain.RoomSuite,
			Available: false,
			Amenities: []domain.LocalizedText{
				{EN: "Private Garden", VN: "Vườn riêng"},
				{EN: "Lounge Access", VN: "Quyền vào Lounge"},
				{EN: "Workstation", VN: "Khu vực làm việc"},
			},
		},
		{
			ID:   "4",
			Name: domain.LocalizedText{EN: "Skyline Penthouse", VN: "Penthouse Chân Mây"},
			Description: domain.LocalizedText{
				EN: "Top floor exclusivity with private infinity pool and cinema room. The highest point of luxury in the city.",
				VN: "Sự độc quyền ở tầng cao nhất với hồ bơi vô cực riêng và phòng chiếu phim. Đỉnh cao của sự sang trọng trong thành phố.",
			},
			Price:     4500,
			Capacity:  6,
			ImageURL:  "https://picsum.photos/800/600?random=4",
			Type:      domain.RoomPresidential,
			Available: true,
			Amenities: []domain.LocalizedText{
				{EN: "Infinity Pool", VN: "Hồ bơi vô cực"},
				{EN: "Helipad Access", VN: "Lối đi sân bay trực thăng"},
				{EN: "Private Chef", VN: "Đầu bếp riêng"},
			},
		},
	}
}

// SeedServices returns the service catalog. Price 0 is complimentary.
func SeedServices() []domain.Service {
	return []domain.Service{
		{
			ID:   "s1",
			Name: domain.LocalizedText{EN: "Golden Lotus Spa", VN: "Spa Sen Vàng"},
			Type: domain.ServiceSpa,
			Description: domain.LocalizedText{
				EN: "Rejuvenate your senses with our signature gold-leaf treatments and ancient therapy techniques.",
				VN: "Làm mới các giác quan của bạn với các liệu pháp lá vàng đặc trưng và các kỹ thuật trị liệu cổ xưa.",
			},
			Price:    200,
			ImageURL: "https://picsum.photos/400/300?random=10",
		},
		{
			ID:   "s2",
			Name: domain.LocalizedText{EN: "Sky High Gym", VN: "Phòng Gym Trên Không"},
			Type: domain.ServiceGym,
			Description: domain.LocalizedText{
				EN: "State-of-the-art equipment with a view. Personal trainers available 24/7.",
				VN: "Thiết bị hiện đại với tầm nhìn tuyệt đẹp. Huấn luyện viên cá nhân 24/7.",
			},
			Price:    50,
			ImageURL: "https://picsum.photos/400/300?random=11",
		},
		{
			ID:   "s3",
			Name: domain.LocalizedText{EN: "Le Gourmet Dining", VN: "Ẩm Thực Le Gourmet"},
			Type: domain.ServiceDining,
			Description: domain.LocalizedText{
				EN: "Michelin-star rated culinary experience featuring global cuisines.",
				VN: "Trải nghiệm ẩm thực đạt sao Michelin với các món ăn toàn cầu.",
			},
			Price:    300,
			ImageURL: "https://picsum.photos/400/300?random=12",
		},
		{
			ID:   "s4",
			Name: domain.LocalizedText{EN: "Infinity Pool", VN: "Bể Bơi Vô Cực"},
			Type: domain.ServicePool,
			Description: domain.LocalizedText{
				EN: "Olympic sized infinity pool overlooking the skyline.",
				VN: "Hồ bơi vô cực kích thước Olympic nhìn ra đường chân trời.",
			},
			Price:    0,
			ImageURL: "https://picsum.photos/400/300?random=13",
		},
	}
}

// SeedPartners returns the read-only partner roster.
func SeedPartners() []domain.Partner {
	return []domain.Partner{
		{ID: "p1", Name: "Rolls Royce Chauffeur", Category: "Transport", LogoURL: "https://picsum.photos/100/100?random=20"},
		{ID: "p2", Name: "Moët & Chandon", Category: "Beverage", LogoURL: "https://picsum.photos/100/100?random=21"},
		{ID: "p3", Name: "Rolex Services", Category: "Luxury", LogoURL: "https://picsum.photos/100/100?random=22"},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
