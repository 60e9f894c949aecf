// Command seed fills an empty database with the service categories and a
// handful of sample accounts. Running it twice leaves the data unchanged.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/davi814/projeto-pi-definitivo/config"
	"github.com/davi814/projeto-pi-definitivo/internal/delivery/dto"
	"github.com/davi814/projeto-pi-definitivo/internal/domain/entity"
	domainRepo "github.com/davi814/projeto-pi-definitivo/internal/domain/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/infrastructure/database"
	"github.com/davi814/projeto-pi-definitivo/internal/repository"
	"github.com/davi814/projeto-pi-definitivo/internal/service"
	"github.com/davi814/projeto-pi-definitivo/internal/usecase"
	"github.com/davi814/projeto-pi-definitivo/pkg/validator"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const samplePassword = "senha123"

var categories = []dto.CreateCategoryRequest{
	{Name: "Reformas e Reparos", Icon: "fa-hammer", Description: "Pedreiros, pintores, eletricistas, encanadores"},
	{Name: "Serviços Domésticos", Icon: "fa-home", Description: "Limpeza, jardinagem, organização"},
	{Name: "Tecnologia", Icon: "fa-laptop", Description: "Informática, sites, suporte técnico"},
	{Name: "Aulas Particulares", Icon: "fa-book", Description: "Professores de idiomas, matemática, música"},
	{Name: "Beleza e Estética", Icon: "fa-cut", Description: "Cabeleireiros, manicures, maquiadores"},
	{Name: "Saúde e Bem-estar", Icon: "fa-heartbeat", Description: "Personal trainers, nutricionistas, fisioterapeutas"},
	{Name: "Eventos", Icon: "fa-birthday-cake", Description: "Fotógrafos, músicos, buffet"},
	{Name: "Transporte", Icon: "fa-truck", Description: "Mudanças, entregas, motoristas"},
}

type sampleAccount struct {
	user            entity.User
	category        string
	bio             string
	experienceYears int
	startingPrice   string
}

var professionals = []sampleAccount{
	{
		user:            entity.User{Name: "João Silva", Email: "joao.silva@example.com", CPF: "529.982.247-25", Phone: "(11) 98765-4321", CEP: "01310100", Address: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"},
		category:        "Reformas e Reparos",
		bio:             "Pedreiro com mais de 15 anos de experiência em reformas residenciais e comerciais. Especialista em alvenaria, acabamento e pequenos reparos.",
		experienceYears: 15,
		startingPrice:   "150.00",
	},
	{
		user:            entity.User{Name: "Maria Santos", Email: "maria.santos@example.com", CPF: "111.444.777-35", Phone: "(11) 91234-5678", CEP: "01310100", Address: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"},
		category:        "Serviços Domésticos",
		bio:             "Profissional de limpeza residencial e comercial. Trabalho com produtos ecológicos e técnicas modernas de limpeza profunda.",
		experienceYears: 8,
		startingPrice:   "80.00",
	},
	{
		user:            entity.User{Name: "Carlos Mendes", Email: "carlos.mendes@example.com", CPF: "123.456.789-09", Phone: "(21) 98888-7777", CEP: "20040020", Address: "Avenida Rio Branco", Neighborhood: "Centro", City: "Rio de Janeiro", State: "RJ"},
		category:        "Tecnologia",
		bio:             "Desenvolvedor web e designer gráfico. Criação de sites, logos e identidade visual para empresas de todos os tamanhos.",
		experienceYears: 10,
		startingPrice:   "500.00",
	},
	{
		user:            entity.User{Name: "Ana Paula", Email: "ana.paula@example.com", CPF: "987.654.321-00", Phone: "(11) 97777-6666", CEP: "04543011", Address: "Avenida Brigadeiro Faria Lima", Neighborhood: "Itaim Bibi", City: "São Paulo", State: "SP"},
		category:        "Aulas Particulares",
		bio:             "Professora de inglês certificada com experiência internacional. Aulas para todos os níveis, preparatório para certificações.",
		experienceYears: 12,
		startingPrice:   "100.00",
	},
	{
		user:            entity.User{Name: "Pedro Oliveira", Email: "pedro.oliveira@example.com", CPF: "246.813.579-28", Phone: "(11) 96666-5555", CEP: "01310100", Address: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"},
		category:        "Reformas e Reparos",
		bio:             "Eletricista profissional com especialização em instalações residenciais e comerciais. Atendo emergências 24h.",
		experienceYears: 18,
		startingPrice:   "120.00",
	},
	{
		user:            entity.User{Name: "Juliana Costa", Email: "juliana.costa@example.com", CPF: "135.792.468-28", Phone: "(21) 95555-4444", CEP: "22640102", Address: "Avenida das Américas", Neighborhood: "Barra da Tijuca", City: "Rio de Janeiro", State: "RJ"},
		category:        "Beleza e Estética",
		bio:             "Cabeleireira e maquiadora profissional. Atendimento em domicílio para eventos especiais, casamentos e festas.",
		experienceYears: 7,
		startingPrice:   "150.00",
	},
}

var sampleClient = entity.User{
	Name: "Cliente Teste", Email: "cliente@example.com", CPF: "314.159.265-90", Phone: "(11) 94444-3333",
	CEP: "01310100", Address: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP",
}

type seeder struct {
	db               *gorm.DB
	log              *logrus.Logger
	categoryUsecase  usecase.CategoryUsecase
	userRepo         domainRepo.UserRepository
	categoryRepo     domainRepo.CategoryRepository
	professionalRepo domainRepo.ProfessionalRepository
	requestRepo      domainRepo.ServiceRequestRepository
	reviewRepo       domainRepo.ReviewRepository
	passwordHash     string
}

func main() {
	sqlitePath := flag.String("sqlite", "", "seed a SQLite file instead of the configured PostgreSQL database")
	flag.Parse()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	db, err := connect(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(samplePassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash sample password: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	s := &seeder{
		db:               db,
		log:              log,
		categoryUsecase:  usecase.NewCategoryUsecase(db, log, categoryRepo, auditService),
		userRepo:         repository.NewUserRepository(),
		categoryRepo:     categoryRepo,
		professionalRepo: repository.NewProfessionalRepository(),
		requestRepo:      repository.NewServiceRequestRepository(),
		reviewRepo:       repository.NewReviewRepository(),
		passwordHash:     string(hash),
	}

	if err := s.run(context.Background()); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Infof("Sample accounts use the password %q (professional: %s, client: %s)", samplePassword, professionals[0].user.Email, sampleClient.Email)
}

func connect(sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		return database.NewSQLiteConnection(sqlitePath)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return database.NewPostgresConnection(cfg.DB, cfg.App.Env)
}

func (s *seeder) run(ctx context.Context) error {
	for i := range categories {
		_, err := s.categoryUsecase.CreateCategory(ctx, &categories[i])
		if err != nil && !errors.Is(err, usecase.ErrCategoryAlreadyExists) {
			return err
		}
	}
	s.log.Infof("%d categories ready", len(categories))

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var first *entity.Professional
	for _, sample := range professionals {
		professional, err := s.ensureProfessional(ctx, tx, sample)
		if err != nil {
			return err
		}
		if first == nil {
			first = professional
		}
	}
	s.log.Infof("%d professionals ready", len(professionals))

	client, err := s.ensureUser(ctx, tx, sampleClient, entity.RoleClient)
	if err != nil {
		return err
	}

	if err := s.ensureReview(ctx, tx, client, first); err != nil {
		return err
	}

	return tx.Commit().Error
}

func (s *seeder) ensureUser(ctx context.Context, tx *gorm.DB, sample entity.User, role entity.Role) (*entity.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, tx, sample.Email)
	if err != nil || existing != nil {
		return existing, err
	}

	user := sample
	user.CPF = validator.NormalizeCPF(sample.CPF)
	user.PasswordHash = s.passwordHash
	user.Role = role
	if err := s.userRepo.Create(ctx, tx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *seeder) ensureProfessional(ctx context.Context, tx *gorm.DB, sample sampleAccount) (*entity.Professional, error) {
	user, err := s.ensureUser(ctx, tx, sample.user, entity.RoleProfessional)
	if err != nil {
		return nil, err
	}

	existing, err := s.professionalRepo.FindByUserID(ctx, tx, user.ID)
	if err != nil || existing != nil {
		return existing, err
	}

	category, err := s.categoryRepo.FindByName(ctx, tx, sample.category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, usecase.ErrCategoryNotFound
	}

	professional := &entity.Professional{
		UserID:          user.ID,
		CategoryID:      &category.ID,
		Bio:             sample.bio,
		ExperienceYears: sample.experienceYears,
		StartingPrice:   decimal.RequireFromString(sample.startingPrice),
		Verified:        true,
		ResponseTime:    entity.DefaultResponseTime,
	}
	if err := s.professionalRepo.Create(ctx, tx, professional); err != nil {
		return nil, err
	}
	return professional, nil
}

// ensureReview gives the first professional a finished job and a rating from the sample client.
func (s *seeder) ensureReview(ctx context.Context, tx *gorm.DB, client *entity.User, professional *entity.Professional) error {
	existing, err := s.reviewRepo.FindByProfessionalAndClient(ctx, tx, professional.ID, client.ID)
	if err != nil || existing != nil {
		return err
	}

	request := &entity.ServiceRequest{
		ClientID:       client.ID,
		ProfessionalID: professional.ID,
		Title:          "Reforma do banheiro",
		Description:    "Troca de revestimento e reparo no encanamento.",
		Budget:         decimal.RequireFromString("1200.00"),
		PreferredDate:  "Próxima semana",
		Status:         entity.RequestStatusFinished,
	}
	if err := s.requestRepo.Create(ctx, tx, request); err != nil {
		return err
	}

	return s.reviewRepo.Create(ctx, tx, &entity.Review{
		RequestID:      request.ID,
		ProfessionalID: professional.ID,
		ClientID:       client.ID,
		Rating:         5,
		Comment:        "Excelente profissional! Muito pontual e trabalho de qualidade.",
	})
}
