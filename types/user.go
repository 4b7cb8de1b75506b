package types

// UserProfile 对外暴露的用户摘要
type UserProfile struct {
	ID       int64  `json:"id,string"`
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

type RegisterRequest struct {
	UserName string `json:"user_name" binding:"required,min=2,max=32"`
	FullName string `json:"full_name" binding:"required,min=1,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

type LoginRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}

// ChannelProfile 频道主页
type ChannelProfile struct {
	UserProfile
	CoverImage       string `json:"cover_image"`
	SubscribersCount int64  `json:"subscribers_count"`
	SubscribedTo     int64  `json:"subscribed_to_count"`
	IsSubscribed     bool   `json:"is_subscribed"`
}
