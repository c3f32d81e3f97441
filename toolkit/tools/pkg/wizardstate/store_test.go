// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package wizardstate

import (
	"sync"
	"testing"

	"github.com/osbuild/image-builder-blueprints/toolkit/tools/blueprintapi"
	"github.com/osbuild/image-builder-blueprints/toolkit/tools/internal/ptrutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreDefaults(t *testing.T) {
	state := NewStore().State()

	assert.Equal(t, WizardModeCreate, state.WizardMode)
	assert.Equal(t, blueprintapi.ArchitectureX86_64, state.Architecture)
	assert.Equal(t, blueprintapi.DistributionRhel9, state.Distribution)
	assert.Empty(t, state.ImageTypes)
	assert.Equal(t, AwsShareMethodSources, state.Aws.ShareMethod)
	assert.Equal(t, AzureShareMethodSources, state.Azure.ShareMethod)
	assert.Equal(t, GcpShareMethodWithGoogle, state.Gcp.ShareMethod)
	assert.Equal(t, GcpAccountTypeUser, state.Gcp.AccountType)
	assert.Equal(t, RegistrationTypeRegisterNowRhc, state.Registration.RegistrationType)
	assert.Equal(t, FileSystemPartitionModeAutomatic, state.FileSystem.Mode)
	assert.True(t, state.FileSystem.IsNextButtonTouched)
	assert.Empty(t, state.StepValidations)
}

func TestStoreStateIsCopy(t *testing.T) {
	store := NewStore()
	store.Dispatch(AddImageType(blueprintapi.ImageTypeAws))

	state := store.State()
	state.ImageTypes[0] = blueprintapi.ImageTypeGcp
	state.Details.BlueprintName = "changed"

	assert.Equal(t, []blueprintapi.ImageType{blueprintapi.ImageTypeAws}, store.State().ImageTypes)
	assert.Equal(t, "", store.State().Details.BlueprintName)
}

func TestImageTypeActions(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		AddImageType(blueprintapi.ImageTypeAws),
		AddImageType(blueprintapi.ImageTypeGcp),
		AddImageType(blueprintapi.ImageTypeAws),
	)
	assert.Equal(t, []blueprintapi.ImageType{blueprintapi.ImageTypeGcp, blueprintapi.ImageTypeAws},
		store.State().ImageTypes)

	store.Dispatch(RemoveImageType(blueprintapi.ImageTypeGcp))
	assert.Equal(t, []blueprintapi.ImageType{blueprintapi.ImageTypeAws}, store.State().ImageTypes)
}

func TestLoadWizardStateResetsStepValidations(t *testing.T) {
	store := NewStore()
	store.Dispatch(SetStepInputValidation(StepRegistration, "activationKey", false, "Select an activation key"))

	loaded := InitialState()
	loaded.Details.BlueprintName = "Blueprint test"
	loaded.StepValidations[StepFileSystem] = StepValidation{Validated: ValidatedError}
	store.Dispatch(LoadWizardState(loaded))

	state := store.State()
	assert.Equal(t, "Blueprint test", state.Details.BlueprintName)
	assert.Equal(t, map[StepID]StepValidation{
		StepDetails: {
			Validated: ValidatedSuccess,
			Inputs:    map[string]bool{"name": true},
		},
	}, state.StepValidations)
}

func TestLoadWizardStateInvalidName(t *testing.T) {
	store := NewStore()
	loaded := InitialState()
	loaded.Details.BlueprintName = "a"
	store.Dispatch(LoadWizardState(loaded))

	state := store.State()
	assert.Equal(t, ValidatedError, SelectStepValidation(state, StepDetails))
	assert.Equal(t, ValidatedError, SelectInputValidation(state, StepDetails, "name"))
	assert.False(t, SelectIsValid(state))
}

func TestChangeGcpShareMethod(t *testing.T) {
	store := NewStore()
	store.Dispatch(ChangeGcpEmail("test@email.com"), ChangeGcpShareMethod(GcpShareMethodWithInsights))

	state := store.State()
	assert.Equal(t, GcpShareMethodWithInsights, state.Gcp.ShareMethod)
	assert.Equal(t, GcpAccountTypeNone, state.Gcp.AccountType)
	assert.Equal(t, "", state.Gcp.Email)

	store.Dispatch(ChangeGcpShareMethod(GcpShareMethodWithGoogle))
	assert.Equal(t, GcpAccountTypeUser, store.State().Gcp.AccountType)
}

func TestChangeFileSystemPartitionMode(t *testing.T) {
	store := NewStore()
	store.Dispatch(ChangeFileSystemPartitionMode(FileSystemPartitionModeManual))

	partitions := store.State().FileSystem.Partitions
	require.Len(t, partitions, 1)
	assert.Equal(t, "/", partitions[0].Mountpoint)
	assert.Equal(t, "10737418240", partitions[0].MinSize)

	// Selecting the current mode does not reset the partitions.
	store.Dispatch(
		AddPartition(NewPartition("/home", "1024", UnitMiB)),
		ChangeFileSystemPartitionMode(FileSystemPartitionModeManual),
	)
	assert.Len(t, store.State().FileSystem.Partitions, 2)

	store.Dispatch(ClearPartitions())
	assert.Len(t, store.State().FileSystem.Partitions, 1)

	store.Dispatch(ChangeFileSystemPartitionMode(FileSystemPartitionModeAutomatic))
	assert.Empty(t, store.State().FileSystem.Partitions)

	store.Dispatch(ClearPartitions())
	assert.Empty(t, store.State().FileSystem.Partitions)
}

func TestPartitionActions(t *testing.T) {
	root := NewPartition("/", "10", UnitGiB)
	home := NewPartition("/home", "1", UnitGiB)
	tmp := NewPartition("/tmp", "1", UnitGiB)

	store := NewStore()
	store.Dispatch(
		ChangeFileSystemConfiguration([]Partition{root, home, tmp}),
		ChangePartitionMountpoint(home.ID, "/srv"),
		ChangePartitionUnit(tmp.ID, UnitMiB),
		ChangePartitionMinSize(tmp.ID, "512"),
		ChangePartitionMinSize("missing", "1"),
	)

	partitions := store.State().FileSystem.Partitions
	assert.Equal(t, "/srv", partitions[1].Mountpoint)
	assert.Equal(t, UnitMiB, partitions[2].Unit)
	assert.Equal(t, "512", partitions[2].MinSize)

	store.Dispatch(ChangePartitionOrder([]string{tmp.ID, root.ID, home.ID}))
	partitions = store.State().FileSystem.Partitions
	assert.Equal(t, []string{tmp.ID, root.ID, home.ID},
		[]string{partitions[0].ID, partitions[1].ID, partitions[2].ID})

	store.Dispatch(RemovePartition(root.ID), RemovePartitionByMountpoint("/srv"))
	partitions = store.State().FileSystem.Partitions
	require.Len(t, partitions, 1)
	assert.Equal(t, tmp.ID, partitions[0].ID)
}

func TestRemovePartitionMissingIsNoop(t *testing.T) {
	store := NewStore()
	store.Dispatch(ChangeFileSystemConfiguration(partitionsWithMountpoints("/", "/var")))
	store.Dispatch(RemovePartition("missing"), RemovePartitionByMountpoint("/missing"))
	assert.Len(t, store.State().FileSystem.Partitions, 2)
}

func TestAddPartitionKeepsDuplicates(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		AddPartition(NewPartition("/var", "1", UnitGiB)),
		AddPartition(NewPartition("/var", "2", UnitGiB)),
	)
	state := store.State()
	assert.Len(t, state.FileSystem.Partitions, 2)
	assert.Equal(t, []string{"/var"}, SelectDuplicateMountPoints(state))
}

func TestPackageActions(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		AddPackage(Package{Name: "vim", Summary: "old"}),
		AddPackage(Package{Name: "tmux"}),
		AddPackage(Package{Name: "vim", Summary: "new"}),
	)
	state := store.State()
	assert.Equal(t, []string{"vim", "tmux"}, SelectPackageNames(state))
	assert.Equal(t, "new", state.Packages[0].Summary)

	store.Dispatch(RemovePackage("vim"), RemovePackage("missing"))
	assert.Equal(t, []string{"tmux"}, SelectPackageNames(store.State()))
}

func TestRepositoryActionsKeepListsInSync(t *testing.T) {
	epel := Repository{
		ID:       "epel",
		Name:     "EPEL",
		BaseURLs: []string{"https://dl.fedoraproject.org/pub/epel/9/Everything/x86_64/"},
		GPGKeys:  []string{"KEY"},
		CheckGPG: ptrutils.PtrTo(true),
	}
	other := Repository{
		ID:       "other",
		BaseURLs: []string{"http://valid.link.to.repo.org/x86_64/"},
	}

	store := NewStore()
	store.Dispatch(AddRepository(epel), AddRepository(other), AddRepository(epel))

	state := store.State()
	require.Len(t, state.Repositories.CustomRepositories, 2)
	require.Len(t, state.Repositories.PayloadRepositories, 2)
	assert.Equal(t, "epel", state.Repositories.CustomRepositories[1].ID)
	assert.Equal(t, epel.BaseURLs[0], *state.Repositories.PayloadRepositories[1].Baseurl)
	assert.Equal(t, "KEY", *state.Repositories.PayloadRepositories[1].Gpgkey)

	store.Dispatch(RemoveRepository(epel))
	state = store.State()
	require.Len(t, state.Repositories.CustomRepositories, 1)
	require.Len(t, state.Repositories.PayloadRepositories, 1)
	assert.Equal(t, "other", state.Repositories.CustomRepositories[0].ID)
	assert.Equal(t, "other", *state.Repositories.PayloadRepositories[0].ID)
	assert.Equal(t, []Repository{other}, SelectRepositories(state))
}

func TestImportCustomRepositoriesSkipsPresent(t *testing.T) {
	store := NewStore()
	store.Dispatch(AddRepository(Repository{BaseURLs: []string{"http://a.example.com/"}}))
	store.Dispatch(ImportCustomRepositories([]blueprintapi.CustomRepository{
		{ID: "a", Baseurl: []string{"http://a.example.com/"}},
		{ID: "b", Baseurl: []string{"http://b.example.com/"}},
	}))

	state := store.State()
	assert.Len(t, state.Repositories.CustomRepositories, 2)
	assert.Len(t, state.Repositories.PayloadRepositories, 2)
}

func TestRecommendedRepositoryActions(t *testing.T) {
	repo := RecommendedRepository{Name: "EPEL", URL: "https://epel.example.com/"}

	store := NewStore()
	store.Dispatch(AddRecommendedRepository(repo), AddRecommendedRepository(repo))
	assert.Len(t, store.State().Repositories.RecommendedRepositories, 1)

	store.Dispatch(RemoveRecommendedRepository(repo))
	assert.Empty(t, store.State().Repositories.RecommendedRepositories)
}

func TestSetStepInputValidation(t *testing.T) {
	store := NewStore()
	store.Dispatch(
		SetStepInputValidation(StepDetails, "name", true, ""),
		SetStepInputValidation(StepDetails, "description", false, "Invalid description"),
	)

	state := store.State()
	step := state.StepValidations[StepDetails]
	assert.Equal(t, ValidatedError, step.Validated)
	require.NotNil(t, step.ErrorText)
	assert.Equal(t, "Invalid description", *step.ErrorText)
	assert.Equal(t, ValidatedSuccess, SelectInputValidation(state, StepDetails, "name"))
	assert.Equal(t, ValidatedDefault, SelectInputValidation(state, StepDetails, "missing"))
	assert.Equal(t, ValidatedDefault, SelectStepValidation(state, StepFileSystem))

	store.Dispatch(SetStepInputValidation(StepDetails, "description", true, ""))
	state = store.State()
	assert.Equal(t, ValidatedSuccess, SelectStepValidation(state, StepDetails))
	assert.True(t, SelectIsValid(state))
}

func TestStoreConcurrentDispatch(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(AddPartition(NewPartition("/var", "1", UnitGiB)))
			_ = store.State()
		}()
	}
	wg.Wait()

	assert.Len(t, store.State().FileSystem.Partitions, 50)
}

func TestInitializeWizard(t *testing.T) {
	store := NewStore()
	store.Dispatch(ChangeBlueprintName("name"), ChangeArchitecture(blueprintapi.ArchitectureAarch64))
	store.Dispatch(InitializeWizard())
	assert.Equal(t, InitialState(), store.State())
}
