package validation

import "time"

// UserCreateInput 注册请求体
type UserCreateInput struct {
	Username *string `json:"username" validate:"required,min=3,max=20"`
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,min=6,max=20,bcryptlen"`
	Role     *string `json:"role" validate:"required,oneof=user admin"`
}

// UserCreate 校验通过的注册信息，用户名和邮箱已转小写
type UserCreate struct {
	Username string
	Email    string
	Password string
	Role     string
}

func (in UserCreateInput) Validate() (UserCreate, error) {
	in.Username = trimLower(in.Username)
	in.Email = trimLower(in.Email)
	in.Role = lower(in.Role)
	if err := check(&in); err != nil {
		return UserCreate{}, err
	}
	return UserCreate{
		Username: *in.Username,
		Email:    *in.Email,
		Password: *in.Password,
		Role:     *in.Role,
	}, nil
}

// UserLoginInput 登录请求体，规则与注册一致
type UserLoginInput struct {
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,min=6,max=20,bcryptlen"`
}

type UserLogin struct {
	Email    string
	Password string
}

func (in UserLoginInput) Validate() (UserLogin, error) {
	in.Email = trimLower(in.Email)
	if err := check(&in); err != nil {
		return UserLogin{}, err
	}
	return UserLogin{Email: *in.Email, Password: *in.Password}, nil
}

// CategoryCreateInput 创建类别请求体，UserID 由认证信息填充
type CategoryCreateInput struct {
	UserID      *string `json:"userId" validate:"required,len=24"`
	Name        *string `json:"name" validate:"required,min=3,max=255"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"required,oneof=income expense"`
	ColorCode   *string `json:"colorCode" validate:"omitempty,max=20"`
}

type CategoryCreate struct {
	UserID      string
	Name        string
	Description string
	Type        string
	ColorCode   string
}

func (in CategoryCreateInput) Validate() (CategoryCreate, error) {
	in.Name = trimLower(in.Name)
	if err := check(&in); err != nil {
		return CategoryCreate{}, err
	}
	return CategoryCreate{
		UserID:      *in.UserID,
		Name:        *in.Name,
		Description: deref(in.Description),
		Type:        *in.Type,
		ColorCode:   deref(in.ColorCode),
	}, nil
}

// CategoryUpdateInput 更新类别请求体；只填 ID 时用于校验路径参数
type CategoryUpdateInput struct {
	CategoryID  *string `json:"categoryId" validate:"required,len=24"`
	UserID      *string `json:"userId" validate:"required,len=24"`
	Name        *string `json:"name" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,oneof=income expense"`
	ColorCode   *string `json:"colorCode" validate:"omitempty,max=20"`
}

// CategoryUpdate 未提供的字段为 nil
type CategoryUpdate struct {
	CategoryID  string
	UserID      string
	Name        *string
	Description *string
	Type        *string
	ColorCode   *string
}

func (in CategoryUpdateInput) Validate() (CategoryUpdate, error) {
	in.Name = trimLower(in.Name)
	if err := check(&in); err != nil {
		return CategoryUpdate{}, err
	}
	return CategoryUpdate{
		CategoryID:  *in.CategoryID,
		UserID:      *in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		ColorCode:   in.ColorCode,
	}, nil
}

// CategoryKey 校验类别 ID 与当前用户 ID
func CategoryKey(categoryID, userID string) (CategoryUpdate, error) {
	return CategoryUpdateInput{CategoryID: &categoryID, UserID: &userID}.Validate()
}

// ExpenseCreateInput 创建消费记录请求体
type ExpenseCreateInput struct {
	UserID      *string    `json:"userId" validate:"required,len=24"`
	CategoryID  *string    `json:"categoryId" validate:"required,len=24"`
	Amount      *float64   `json:"amount" validate:"required,gt=0,lt=10000000000,cents"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

// ExpenseCreate Date 为零值时由存储层取当前时间
type ExpenseCreate struct {
	UserID      string
	CategoryID  string
	Amount      float64
	Description string
	Date        time.Time
}

func (in ExpenseCreateInput) Validate() (ExpenseCreate, error) {
	if err := check(&in); err != nil {
		return ExpenseCreate{}, err
	}
	out := ExpenseCreate{
		UserID:      *in.UserID,
		CategoryID:  *in.CategoryID,
		Amount:      *in.Amount,
		Description: deref(in.Description),
	}
	if in.Date != nil {
		out.Date = *in.Date
	}
	return out, nil
}

// ExpenseUpdateInput 更新消费记录请求体；只填 ID 时用于校验路径参数
type ExpenseUpdateInput struct {
	ExpenseID   *string    `json:"expenseId" validate:"required,len=24"`
	UserID      *string    `json:"userId" validate:"required,len=24"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0,lt=10000000000,cents"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
}

type ExpenseUpdate struct {
	ExpenseID   string
	UserID      string
	Amount      *float64
	Description *string
	Date        *time.Time
}

func (in ExpenseUpdateInput) Validate() (ExpenseUpdate, error) {
	if err := check(&in); err != nil {
		return ExpenseUpdate{}, err
	}
	return ExpenseUpdate{
		ExpenseID:   *in.ExpenseID,
		UserID:      *in.UserID,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
	}, nil
}

// ExpenseKey 校验消费记录 ID 与当前用户 ID
func ExpenseKey(expenseID, userID string) (ExpenseUpdate, error) {
	return ExpenseUpdateInput{ExpenseID: &expenseID, UserID: &userID}.Validate()
}
